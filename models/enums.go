package models

// AppointmentStatus is the lifecycle state of an appointment. Transitions are
// owned by the appointment-management workflow; the calendar engine only reads
// terminal/non-terminal status for conflict and revenue eligibility.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCheckedIn AppointmentStatus = "checked_in"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// IsTerminal reports whether the appointment can no longer occupy calendar time.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCancelled || s == AppointmentCompleted
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCheckedIn,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// AppointmentPaymentStatus tracks appointment payment collection.
type AppointmentPaymentStatus string

const (
	PaymentUnpaid     AppointmentPaymentStatus = "unpaid"
	PaymentPending    AppointmentPaymentStatus = "pending"
	PaymentAuthorized AppointmentPaymentStatus = "authorized"
	PaymentPaid       AppointmentPaymentStatus = "paid"
	PaymentRefunded   AppointmentPaymentStatus = "refunded"
)

func (s AppointmentPaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPending, PaymentAuthorized, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// AppointmentSource records how the appointment entered the system.
type AppointmentSource string

const (
	SourceOnline AppointmentSource = "online"
	SourceManual AppointmentSource = "manual"
	SourceWalkIn AppointmentSource = "walk_in"
)

// AppointmentChannel records the client surface the appointment came through.
type AppointmentChannel string

const (
	ChannelWeb       AppointmentChannel = "web"
	ChannelMobile    AppointmentChannel = "mobile"
	ChannelAssistant AppointmentChannel = "assistant"
)

// TransactionStatus mirrors the platform-wide payment status table.
type TransactionStatus string

const (
	TxnPaid      TransactionStatus = "paid"
	TxnPending   TransactionStatus = "pending"
	TxnFailed    TransactionStatus = "failed"
	TxnRefunded  TransactionStatus = "refunded"
	TxnCancelled TransactionStatus = "cancelled"
)

// TransactionType distinguishes ledger directions.
type TransactionType string

const (
	TxnCredit    TransactionType = "credit"
	TxnDebit     TransactionType = "debit"
	TxnTicketing TransactionType = "ticketing"
)

// PayoutType selects payout settlement speed.
type PayoutType string

const (
	PayoutStandard PayoutType = "standard"
	PayoutInstant  PayoutType = "instant"
)

// BusinessType is the tenant's incorporation form.
type BusinessType string

const (
	BusinessLLC  BusinessType = "llc"
	BusinessSole BusinessType = "sole"
)

// PricingPlan is the tenant's billing tier.
type PricingPlan string

const (
	PlanStarter      PricingPlan = "starter"
	PlanProfessional PricingPlan = "professional"
)

// ProductType selects the vertical a tenant operates in.
type ProductType string

const (
	ProductAppointments ProductType = "appointments"
	ProductHotels       ProductType = "hotels"
)

// StaffStatus is a staff member's employment state.
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
	StaffArchived StaffStatus = "archived"
)

// DashboardRole is a member's role within a tenant workspace.
type DashboardRole string

const (
	RoleOwner      DashboardRole = "owner"
	RoleAdmin      DashboardRole = "admin"
	RoleSupervisor DashboardRole = "supervisor"
	RoleViewer     DashboardRole = "viewer"
	RoleStaff      DashboardRole = "staff"
)
