package models

import "fmt"

// AppointmentCustomer identifies who the appointment is for. Walk-in customers
// may carry only a name.
type AppointmentCustomer struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// AppointmentSchedule places an appointment on the tenant's calendar.
// Date is "YYYY-MM-DD", Start/End are 24-hour "HH:MM" on that same day.
// Timezone is an advisory label: all calendar arithmetic treats date+time as
// naive local wall-clock and performs no conversion.
type AppointmentSchedule struct {
	Date     string `bson:"date" json:"date"`
	Start    string `bson:"start" json:"start"`
	End      string `bson:"end" json:"end"`
	Timezone string `bson:"timezone" json:"timezone"`
}

// AppointmentServiceSnapshot freezes the booked service's identity and pricing
// at booking time, so later catalogue edits don't rewrite history.
type AppointmentServiceSnapshot struct {
	ServiceID   string  `bson:"serviceId" json:"serviceId"`
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	CategoryID  string  `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Duration    string  `bson:"duration" json:"duration"` // pricing option reference
	PriceType   string  `bson:"priceType" json:"priceType"`
	Currency    string  `bson:"currency" json:"currency"`
	Price       float64 `bson:"price,omitempty" json:"price,omitempty"`
}

type AppointmentStaffAssignment struct {
	StaffID    string `bson:"staffId" json:"staffId"`
	Role       string `bson:"role" json:"role"` // primary or assistant
	AssignedAt int64  `bson:"assignedAt" json:"assignedAt"`
	Confirmed  bool   `bson:"confirmed" json:"confirmed"`
}

type AppointmentTimelineEntry struct {
	Type    string         `bson:"type" json:"type"` // status_change, note, assignment, reminder
	At      int64          `bson:"at" json:"at"`
	ActorID string         `bson:"actorId,omitempty" json:"actorId,omitempty"`
	Payload map[string]any `bson:"payload,omitempty" json:"payload,omitempty"`
}

// AppointmentTotals is the money summary for one appointment.
type AppointmentTotals struct {
	Subtotal   float64 `bson:"subtotal" json:"subtotal"`
	Tax        float64 `bson:"tax,omitempty" json:"tax,omitempty"`
	Discount   float64 `bson:"discount,omitempty" json:"discount,omitempty"`
	GrandTotal float64 `bson:"grandTotal" json:"grandTotal"`
	Currency   string  `bson:"currency" json:"currency"`
}

// Appointment is a booked (or attempted) service visit for a tenant.
type Appointment struct {
	ID            string                       `bson:"id" json:"id"`
	TenantID      string                       `bson:"tenantId" json:"tenantId"`
	Customer      AppointmentCustomer          `bson:"customer" json:"customer"`
	Schedule      AppointmentSchedule          `bson:"schedule" json:"schedule"`
	Service       AppointmentServiceSnapshot   `bson:"service" json:"service"`
	Notes         string                       `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        AppointmentStatus            `bson:"status" json:"status"`
	PaymentStatus AppointmentPaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
	Channel       AppointmentChannel           `bson:"channel" json:"channel"`
	Source        AppointmentSource            `bson:"source" json:"source"`
	Totals        AppointmentTotals            `bson:"totals" json:"totals"`
	Assignments   []AppointmentStaffAssignment `bson:"assignments" json:"assignments"`
	Timeline      []AppointmentTimelineEntry   `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Metadata      map[string]any               `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     int64                        `bson:"iat" json:"iat"`
	UpdatedAt     int64                        `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentOptions overrides the defaults applied by NewAppointment.
type AppointmentOptions struct {
	Source        AppointmentSource
	Channel       AppointmentChannel
	Status        AppointmentStatus
	PaymentStatus AppointmentPaymentStatus
	Notes         string
	Assignments   []AppointmentStaffAssignment
	Metadata      map[string]any
}

// NewAppointment builds a pending appointment with an opening timeline entry.
// now is the creation unix timestamp (injected so callers and tests control it).
func NewAppointment(tenantID string, customer AppointmentCustomer, schedule AppointmentSchedule,
	service AppointmentServiceSnapshot, totals AppointmentTotals, now int64, opts *AppointmentOptions,
) Appointment {
	if opts == nil {
		opts = &AppointmentOptions{}
	}
	status := opts.Status
	if status == "" {
		status = AppointmentPending
	}
	payStatus := opts.PaymentStatus
	if payStatus == "" {
		payStatus = PaymentUnpaid
	}
	channel := opts.Channel
	if channel == "" {
		channel = ChannelWeb
	}
	source := opts.Source
	if source == "" {
		source = SourceOnline
	}
	assignments := opts.Assignments
	if assignments == nil {
		assignments = []AppointmentStaffAssignment{}
	}

	return Appointment{
		ID:            fmt.Sprintf("apt_%s_%d", service.ServiceID, now),
		TenantID:      tenantID,
		Customer:      customer,
		Schedule:      schedule,
		Service:       service,
		Totals:        totals,
		Notes:         opts.Notes,
		Status:        status,
		PaymentStatus: payStatus,
		Channel:       channel,
		Source:        source,
		Assignments:   assignments,
		Metadata:      opts.Metadata,
		Timeline: []AppointmentTimelineEntry{{
			Type:    "status_change",
			At:      now,
			Payload: map[string]any{"status": string(status)},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddTimelineEntry appends an audit entry and bumps UpdatedAt.
func (a *Appointment) AddTimelineEntry(entry AppointmentTimelineEntry) {
	a.Timeline = append(a.Timeline, entry)
	a.UpdatedAt = entry.At
}
