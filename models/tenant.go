package models

// HoursInterval is one open/close span within a business day, both ends in
// 24-hour "HH:MM" on the same calendar day (no overnight spans). A day may
// carry several intervals to represent split shifts.
type HoursInterval struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// BusinessHours maps each weekday to its ordered interval list. An absent or
// empty list means the tenant is closed that day. Intervals are expected to be
// non-overlapping and sorted by open time; that invariant is enforced at
// configuration-write time, not on the read path.
type BusinessHours map[Weekday][]HoursInterval

// TenantAppointments holds the appointment-product configuration of a tenant.
type TenantAppointments struct {
	Services []string      `bson:"services,omitempty" json:"services,omitempty"`
	Location []string      `bson:"location,omitempty" json:"location,omitempty"`
	About    string        `bson:"about,omitempty" json:"about,omitempty"`
	Hours    BusinessHours `bson:"hours,omitempty" json:"hours,omitempty"`
}

type TenantBranding struct {
	Logo           string `bson:"logo,omitempty" json:"logo,omitempty"`
	PrimaryColor   string `bson:"primaryColor,omitempty" json:"primaryColor,omitempty"`
	SecondaryColor string `bson:"secondaryColor,omitempty" json:"secondaryColor,omitempty"`
	AccentColor    string `bson:"accentColor,omitempty" json:"accentColor,omitempty"`
	Favicon        string `bson:"favicon,omitempty" json:"favicon,omitempty"`
}

type TenantLimits struct {
	Members       int `bson:"members" json:"members"`
	CustomDomains int `bson:"customDomains" json:"customDomains"`
}

type TenantSettings struct {
	Features     []string     `bson:"features" json:"features"`
	Limits       TenantLimits `bson:"limits" json:"limits"`
	CustomDomain string       `bson:"customDomain,omitempty" json:"customDomain,omitempty"`
	SSLEnabled   bool         `bson:"sslEnabled,omitempty" json:"sslEnabled,omitempty"`
}

type TenantBilling struct {
	Plan           PricingPlan `bson:"plan" json:"plan"`
	CustomerID     string      `bson:"customerId,omitempty" json:"customerId,omitempty"`
	SubscriptionID string      `bson:"subscriptionId,omitempty" json:"subscriptionId,omitempty"`
	PriceID        string      `bson:"priceId,omitempty" json:"priceId,omitempty"`
	TrialEnds      int64       `bson:"trialEnds,omitempty" json:"trialEnds,omitempty"`
}

type TenantMember struct {
	Role DashboardRole `bson:"role" json:"role"`
	UID  string        `bson:"uid" json:"uid"`
}

type TenantIncorporation struct {
	Legal      string `bson:"legal" json:"legal"`
	Identifier string `bson:"identifier" json:"identifier"`
	VAT        string `bson:"vat,omitempty" json:"vat,omitempty"`
}

// Tenant is a business workspace on the platform.
type Tenant struct {
	ID                  string                  `bson:"id" json:"id"`
	Name                string                  `bson:"name" json:"name"`
	Email               string                  `bson:"email" json:"email"`
	Slug                string                  `bson:"slug" json:"slug"`
	Branding            *TenantBranding         `bson:"branding,omitempty" json:"branding,omitempty"`
	Settings            TenantSettings          `bson:"settings" json:"settings"`
	Billing             *TenantBilling          `bson:"billing,omitempty" json:"billing,omitempty"`
	Status              string                  `bson:"status" json:"status"` // active, trial, suspended, cancelled
	Owner               string                  `bson:"owner" json:"owner"`
	Product             ProductType             `bson:"product" json:"product"`
	Appointments        *TenantAppointments     `bson:"appointments,omitempty" json:"appointments,omitempty"`
	Members             map[string]TenantMember `bson:"members" json:"members"`
	IncorporationStatus BusinessType            `bson:"incorporationStatus" json:"incorporationStatus"`
	Incorporation       *TenantIncorporation    `bson:"incorporation,omitempty" json:"incorporation,omitempty"`
	CreatedAt           int64                   `bson:"iat" json:"iat"`
	UpdatedAt           int64                   `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the tenant may serve bookings (trial counts).
func (t *Tenant) IsActive() bool {
	return t.Status == "active" || t.Status == "trial"
}

// Hours returns the tenant's business-hours configuration, or nil when the
// tenant has never configured hours.
func (t *Tenant) Hours() BusinessHours {
	if t.Appointments == nil {
		return nil
	}
	return t.Appointments.Hours
}
