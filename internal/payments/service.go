package payments

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/ids"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

const idPrefix = "P"

// Service is the append-only payment ledger. Recording a payment is the sole
// trigger that activates a membership.
type Service interface {
	Record(memberID string, input RecordPaymentInput) (*models.Payment, *models.Member)
	ForMember(memberID string) []models.Payment
	InMonth(year, month string) []models.Payment
}

// RecordPaymentInput carries the operator-entered payment fields. The plan
// type is free text here: the legacy tool accepted any value and overwrote
// the member's plan with it.
type RecordPaymentInput struct {
	DatePaid       string
	Amount         decimal.Decimal
	Method         string
	MembershipType string
}

type service struct {
	sess *session.Session
}

// NewService wires a payment ledger over the session's collections.
func NewService(sess *session.Session) (Service, error) {
	if sess == nil {
		return nil, fmt.Errorf("session required")
	}
	return &service{sess: sess}, nil
}

// Record appends a payment for the member and, as a side effect, sets the
// member active and overwrites their plan type with the paid-for type. When
// the member does not exist nothing is created and nothing changes; both
// results are nil.
func (s *service) Record(memberID string, input RecordPaymentInput) (*models.Payment, *models.Member) {
	idx := -1
	for i := range s.sess.Members {
		if s.sess.Members[i].ID == memberID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	existing := make([]string, 0, len(s.sess.Payments))
	for _, p := range s.sess.Payments {
		existing = append(existing, p.ID)
	}

	payment := models.Payment{
		ID:             ids.NextID(idPrefix, existing),
		MemberID:       memberID,
		DatePaid:       input.DatePaid,
		Amount:         input.Amount,
		Method:         input.Method,
		MembershipType: input.MembershipType,
	}
	s.sess.Payments = append(s.sess.Payments, payment)

	member := &s.sess.Members[idx]
	member.Status = enums.MemberStatusActive
	member.MembershipType = input.MembershipType

	updated := *member
	return &payment, &updated
}

// ForMember returns the member's payments in append order.
func (s *service) ForMember(memberID string) []models.Payment {
	result := []models.Payment{}
	for _, p := range s.sess.Payments {
		if p.MemberID == memberID {
			result = append(result, p)
		}
	}
	return result
}

// InMonth matches the year and month components of date_paid literally.
// Both arguments are compared as strings, so the month must already be
// zero-padded ("03", not "3").
func (s *service) InMonth(year, month string) []models.Payment {
	result := []models.Payment{}
	for _, p := range s.sess.Payments {
		parts := strings.Split(p.DatePaid, "-")
		if len(parts) != 3 {
			continue
		}
		if parts[0] == year && parts[1] == month {
			result = append(result, p)
		}
	}
	return result
}
