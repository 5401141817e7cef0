package models

import (
	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
)

// Member is one row of the members file. Dates stay as naive YYYY-MM-DD
// strings: the store format is fixed-width ISO, so most filters compare them
// lexicographically, and the few calendar computations parse on demand.
type Member struct {
	ID             string             `json:"member_id"`
	Name           string             `json:"name"`
	Age            int                `json:"age"`
	Phone          string             `json:"phone"`
	MembershipType string             `json:"membership_type"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	Status         enums.MemberStatus `json:"status"`
	Trainer        string             `json:"trainer"`
	Schedule       string             `json:"schedule"`
}
