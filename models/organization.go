package models

// BankAccount is a settlement destination.
type BankAccount struct {
	Bank      string `bson:"bank" json:"bank"`
	Slug      string `bson:"slug,omitempty" json:"slug,omitempty"`
	Reference string `bson:"reference,omitempty" json:"reference,omitempty"`
	Account   string `bson:"account" json:"account"`
	Name      string `bson:"name" json:"name"`
}

type Balance struct {
	Current         float64 `bson:"current" json:"current"`
	LifetimeCredits float64 `bson:"lifetime_credits,omitempty" json:"lifetime_credits,omitempty"`
	LifetimeDebits  float64 `bson:"lifetime_debits,omitempty" json:"lifetime_debits,omitempty"`
}

type OrgSettlement struct {
	AutomaticPayouts bool       `bson:"automatic_payouts,omitempty" json:"automatic_payouts,omitempty"`
	Mode             PayoutType `bson:"mode,omitempty" json:"mode,omitempty"`
}

type OrgTerms struct {
	Mandatory bool `bson:"mandatory" json:"mandatory"`
	Marketing bool `bson:"marketing" json:"marketing"`
}

// Organization is the legal/financial entity behind one or more tenants.
type Organization struct {
	ID                string                   `bson:"id" json:"id"`
	Name              string                   `bson:"name" json:"name"`
	Slug              string                   `bson:"slug" json:"slug"`
	ShortCode         string                   `bson:"shortCode" json:"shortCode"`
	Email             string                   `bson:"email,omitempty" json:"email,omitempty"`
	OwnerID           string                   `bson:"ownerId" json:"ownerId"`
	Industry          string                   `bson:"industry" json:"industry"`
	Referral          string                   `bson:"referral,omitempty" json:"referral,omitempty"`
	Type              BusinessType             `bson:"type" json:"type"`
	LiveBalance       *Balance                 `bson:"liveBalance,omitempty" json:"liveBalance,omitempty"`
	TestBalance       *Balance                 `bson:"testBalance,omitempty" json:"testBalance,omitempty"`
	AcceptingPayments bool                     `bson:"accepting_payments,omitempty" json:"accepting_payments,omitempty"`
	Settlement        OrgSettlement            `bson:"settlement" json:"settlement"`
	TeamUIDs          []string                 `bson:"teamUids,omitempty" json:"teamUids,omitempty"`
	Roles             map[string]DashboardRole `bson:"roles" json:"roles"`
	Terms             OrgTerms                 `bson:"terms" json:"terms"`
	Demo              bool                     `bson:"demo,omitempty" json:"demo,omitempty"`
	CreatedAt         int64                    `bson:"iat" json:"iat"`
	UpdatedAt         int64                    `bson:"updatedAt" json:"updatedAt"`
}

// UserRole looks up a member's dashboard role, empty when not a member.
func (o *Organization) UserRole(uid string) DashboardRole {
	return o.Roles[uid]
}
