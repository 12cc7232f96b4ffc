package models

// PriceType is how a pricing option expresses its price.
type PriceType string

const (
	PriceFree  PriceType = "free"
	PriceFixed PriceType = "fixed"
	PriceFrom  PriceType = "from"
)

// PricingOption is one bookable duration/price combination for a service.
type PricingOption struct {
	ID        string    `bson:"id" json:"id"`
	Duration  int       `bson:"duration" json:"duration"` // minutes
	PriceType PriceType `bson:"priceType" json:"priceType"`
	Price     float64   `bson:"price,omitempty" json:"price,omitempty"`
	Currency  string    `bson:"currency,omitempty" json:"currency,omitempty"`
}

type RebookReminder struct {
	Enabled  bool   `bson:"enabled" json:"enabled"`
	When     int    `bson:"when" json:"when"`
	Duration string `bson:"duration" json:"duration"` // days, weeks, months
}

type ServiceNotificationSettings struct {
	RebookReminder *RebookReminder `bson:"rebookReminder,omitempty" json:"rebookReminder,omitempty"`
}

type ServiceSalesSettings struct {
	TaxRate     float64 `bson:"taxRate,omitempty" json:"taxRate,omitempty"` // percentage
	TaxIncluded bool    `bson:"taxIncluded,omitempty" json:"taxIncluded,omitempty"`
}

// Service is a bookable offering in a tenant's catalogue.
type Service struct {
	ID                   string                       `bson:"id" json:"id"`
	Name                 string                       `bson:"name" json:"name"`
	CategoryID           string                       `bson:"categoryId" json:"categoryId"`
	Description          string                       `bson:"description,omitempty" json:"description,omitempty"`
	TenantID             string                       `bson:"tenantId" json:"tenantId"`
	OnlineBookingEnabled bool                         `bson:"onlineBookingEnabled" json:"onlineBookingEnabled"`
	AvailableFor         string                       `bson:"availableFor,omitempty" json:"availableFor,omitempty"` // all, male, female, kids
	PricingOptions       []PricingOption              `bson:"pricingOptions" json:"pricingOptions"`
	NotificationSettings *ServiceNotificationSettings `bson:"notificationSettings,omitempty" json:"notificationSettings,omitempty"`
	SalesSettings        *ServiceSalesSettings        `bson:"salesSettings,omitempty" json:"salesSettings,omitempty"`
	CreatedBy            string                       `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt            int64                        `bson:"iat" json:"iat"`
	UpdatedAt            int64                        `bson:"updatedAt" json:"updatedAt"`
}
