package models

import "github.com/shopspring/decimal"

// Payment is one row of the payments file. Payments are append-only: once
// recorded they are never mutated or deleted.
type Payment struct {
	ID             string          `json:"payment_id"`
	MemberID       string          `json:"member_id"`
	DatePaid       string          `json:"date_paid"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	MembershipType string          `json:"membership_type"`
}
