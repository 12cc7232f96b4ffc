package models

// Staff is a team member who can be assigned to appointments. Pin holds the
// scrypt-encoded terminal PIN, never the plain value.
type Staff struct {
	ID        string      `bson:"id" json:"id"`
	Org       string      `bson:"org" json:"org"`
	CreatedBy string      `bson:"createdBy" json:"createdBy"`
	Name      string      `bson:"name" json:"name"`
	WhatsApp  string      `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Venues    []string    `bson:"venues" json:"venues"`
	Pin       string      `bson:"pin" json:"-"`
	ImageURL  string      `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Status    StaffStatus `bson:"status" json:"status"`
	CreatedAt int64       `bson:"iat" json:"iat"`
	UpdatedAt int64       `bson:"updatedAt" json:"updatedAt"`
}
