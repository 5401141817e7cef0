// Package session owns the in-memory record collections for one process run.
// Services mutate the collections through their own operations and the caller
// persists the touched collection after each confirmed mutation.
package session

import (
	"go.uber.org/multierr"

	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

// Store is the persistence collaborator contract the session consumes.
type Store interface {
	LoadMembers() ([]models.Member, error)
	SaveMembers([]models.Member) error
	LoadPayments() ([]models.Payment, error)
	SavePayments([]models.Payment) error
	LoadAttendance() ([]models.Attendance, error)
	SaveAttendance([]models.Attendance) error
}

type Session struct {
	store Store

	Members    []models.Member
	Payments   []models.Payment
	Attendance []models.Attendance
}

// Load reads all three collections from the store into a fresh session.
func Load(store Store) (*Session, error) {
	members, err := store.LoadMembers()
	if err != nil {
		return nil, err
	}
	payments, err := store.LoadPayments()
	if err != nil {
		return nil, err
	}
	attendance, err := store.LoadAttendance()
	if err != nil {
		return nil, err
	}
	return &Session{
		store:      store,
		Members:    members,
		Payments:   payments,
		Attendance: attendance,
	}, nil
}

func (s *Session) SaveMembers() error {
	return s.store.SaveMembers(s.Members)
}

func (s *Session) SavePayments() error {
	return s.store.SavePayments(s.Payments)
}

func (s *Session) SaveAttendance() error {
	return s.store.SaveAttendance(s.Attendance)
}

// SaveAll flushes every collection, attempting all three even when one
// fails, and reports the combined failures.
func (s *Session) SaveAll() error {
	return multierr.Combine(
		s.SaveMembers(),
		s.SavePayments(),
		s.SaveAttendance(),
	)
}
