package models

import "fmt"

// TransactionRelationship ties a ledger entry to the parties it settles.
type TransactionRelationship struct {
	BalanceAfter float64 `bson:"balance_after,omitempty" json:"balance_after,omitempty"`
	Merchant     string  `bson:"merchant" json:"merchant"`
	Staff        string  `bson:"staff,omitempty" json:"staff,omitempty"`
	Venue        string  `bson:"venue,omitempty" json:"venue,omitempty"`
	Fee          float64 `bson:"fee" json:"fee"`
}

// LineItem is one priced row inside a transaction's metadata.
type LineItem struct {
	Currency  string  `bson:"currency" json:"currency"`
	Amount    float64 `bson:"amount" json:"amount"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Item      string  `bson:"item" json:"item"`
	Reference string  `bson:"reference,omitempty" json:"reference,omitempty"`
}

type TransactionTax struct {
	Percentage float64 `bson:"percentage" json:"percentage"`
	Behaviour  string  `bson:"behaviour" json:"behaviour"` // inclusive or excluded
}

type CardDetails struct {
	CardType string `bson:"card_type" json:"card_type"`
	FirstSix string `bson:"first_six" json:"first_six"`
	LastFour string `bson:"last_four" json:"last_four"`
	Expiry   string `bson:"expiry" json:"expiry"`
}

type PaymentDetails struct {
	Method string       `bson:"method" json:"method"`
	Card   *CardDetails `bson:"card,omitempty" json:"card,omitempty"`
}

// Transaction is a money movement record. Provider identifiers are opaque
// references; settlement itself happens outside this domain core.
type Transaction struct {
	ID           string                  `bson:"id" json:"id"`
	Reference    string                  `bson:"reference" json:"reference"`
	Provider     string                  `bson:"provider,omitempty" json:"provider,omitempty"`
	Relationship TransactionRelationship `bson:"relationship" json:"relationship"`
	Amount       float64                 `bson:"amount" json:"amount"`
	Tax          TransactionTax          `bson:"tax" json:"tax"`
	PaidAt       int64                   `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	Currency     string                  `bson:"currency" json:"currency"`
	Customer     string                  `bson:"customer,omitempty" json:"customer,omitempty"`
	Type         TransactionType         `bson:"type" json:"type"`
	ProviderFee  float64                 `bson:"provider_fee,omitempty" json:"provider_fee,omitempty"`
	Domain       string                  `bson:"domain" json:"domain"` // test or live
	Status       TransactionStatus       `bson:"status" json:"status"`
	Payment      *PaymentDetails         `bson:"payment,omitempty" json:"payment,omitempty"`
	Metadata     map[string]any          `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt    int64                   `bson:"iat" json:"iat"`
	UpdatedAt    int64                   `bson:"updatedAt" json:"updatedAt"`
}

// LineItemsTotal sums amount*quantity across line items. All items must share
// one currency.
func LineItemsTotal(items []LineItem) (float64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	currency := items[0].Currency
	var total float64
	for _, item := range items {
		if item.Currency != currency {
			return 0, fmt.Errorf("line items mix currencies %s and %s", currency, item.Currency)
		}
		total += item.Amount * float64(item.Quantity)
	}
	return total, nil
}

// PercentageFee computes a fee from a total and a percentage rate.
func PercentageFee(total, percentage float64) float64 {
	return (total * percentage) / 100
}
