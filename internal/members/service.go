package members

import (
	"fmt"
	"time"

	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/ids"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

const idPrefix = "M"

const dateLayout = "2006-01-02"

// Service exposes registry operations over the member collection. Lookup
// misses return nil rather than an error; the caller decides how to surface
// an absent member.
type Service interface {
	Register(input RegisterMemberInput) *models.Member
	Find(memberID string) *models.Member
	Update(memberID string, input UpdateMemberInput) *models.Member
	Cancel(memberID string) *models.Member
	List() []models.Member
	Active() []models.Member
	Expired() []models.Member
	Pending() []models.Member
	ExpiringWithin(days int, today time.Time) ([]models.Member, error)
}

// RegisterMemberInput carries the operator-entered fields for a new member.
// Validation (age range, required fields, known plan type) happens at the
// input boundary; the registry assumes well-typed values.
type RegisterMemberInput struct {
	Name           string
	Age            int
	Phone          string
	MembershipType string
	StartDate      string
	EndDate        string
	Trainer        string
	Schedule       string
}

// UpdateMemberInput carries a partial update. Empty fields (nil Age) mean
// "leave unchanged". The member id itself is never updatable.
type UpdateMemberInput struct {
	Name           string
	Age            *int
	Phone          string
	MembershipType string
	StartDate      string
	EndDate        string
	Status         string
	Trainer        string
	Schedule       string
}

type service struct {
	sess *session.Session
}

// NewService wires a member registry over the session's member collection.
func NewService(sess *session.Session) (Service, error) {
	if sess == nil {
		return nil, fmt.Errorf("session required")
	}
	return &service{sess: sess}, nil
}

func (s *service) Register(input RegisterMemberInput) *models.Member {
	existing := make([]string, 0, len(s.sess.Members))
	for _, m := range s.sess.Members {
		existing = append(existing, m.ID)
	}

	member := models.Member{
		ID:             ids.NextID(idPrefix, existing),
		Name:           input.Name,
		Age:            input.Age,
		Phone:          input.Phone,
		MembershipType: input.MembershipType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Status:         enums.MemberStatusPending,
		Trainer:        input.Trainer,
		Schedule:       input.Schedule,
	}
	s.sess.Members = append(s.sess.Members, member)
	return &member
}

func (s *service) Find(memberID string) *models.Member {
	idx := s.indexOf(memberID)
	if idx < 0 {
		return nil
	}
	found := s.sess.Members[idx]
	return &found
}

func (s *service) Update(memberID string, input UpdateMemberInput) *models.Member {
	idx := s.indexOf(memberID)
	if idx < 0 {
		return nil
	}

	member := &s.sess.Members[idx]
	if input.Name != "" {
		member.Name = input.Name
	}
	if input.Age != nil {
		member.Age = *input.Age
	}
	if input.Phone != "" {
		member.Phone = input.Phone
	}
	if input.MembershipType != "" {
		member.MembershipType = input.MembershipType
	}
	if input.StartDate != "" {
		member.StartDate = input.StartDate
	}
	if input.EndDate != "" {
		member.EndDate = input.EndDate
	}
	if input.Status != "" {
		member.Status = enums.MemberStatus(input.Status)
	}
	if input.Trainer != "" {
		member.Trainer = input.Trainer
	}
	if input.Schedule != "" {
		member.Schedule = input.Schedule
	}

	updated := *member
	return &updated
}

// Cancel moves the member to expired. Cancelling an already-expired member
// is a no-op that still returns the record.
func (s *service) Cancel(memberID string) *models.Member {
	idx := s.indexOf(memberID)
	if idx < 0 {
		return nil
	}
	s.sess.Members[idx].Status = enums.MemberStatusExpired
	cancelled := s.sess.Members[idx]
	return &cancelled
}

func (s *service) List() []models.Member {
	out := make([]models.Member, len(s.sess.Members))
	copy(out, s.sess.Members)
	return out
}

func (s *service) Active() []models.Member {
	return s.withStatus(enums.MemberStatusActive)
}

func (s *service) Expired() []models.Member {
	return s.withStatus(enums.MemberStatusExpired)
}

func (s *service) Pending() []models.Member {
	return s.withStatus(enums.MemberStatusPending)
}

// ExpiringWithin returns members whose end date falls inside
// [today, today+days], both ends inclusive. End dates that do not parse as
// calendar dates are skipped, never fatal.
func (s *service) ExpiringWithin(days int, today time.Time) ([]models.Member, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must be non-negative, got %d", days)
	}

	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 0, days)

	result := []models.Member{}
	for _, m := range s.sess.Members {
		end, err := time.Parse(dateLayout, m.EndDate)
		if err != nil {
			continue
		}
		if end.Before(from) || end.After(until) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (s *service) withStatus(status enums.MemberStatus) []models.Member {
	result := []models.Member{}
	for _, m := range s.sess.Members {
		if m.Status.Is(status) {
			result = append(result, m)
		}
	}
	return result
}

func (s *service) indexOf(memberID string) int {
	for i := range s.sess.Members {
		if s.sess.Members[i].ID == memberID {
			return i
		}
	}
	return -1
}
