package attendance

import (
	"fmt"

	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/ids"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

const idPrefix = "A"

// Service is the append-only check-in log. The member id is deliberately not
// checked against the registry here; orphaned rows in the legacy files must
// keep working, and the surrounding handler decides whether to gate new
// check-ins on a known member.
type Service interface {
	Record(memberID string, input RecordAttendanceInput) *models.Attendance
	ForMember(memberID string) []models.Attendance
	OnDate(date string) []models.Attendance
	InRange(startDate, endDate string) []models.Attendance
}

// RecordAttendanceInput carries the check-in fields. Times are free-text
// strings, never validated as times of day.
type RecordAttendanceInput struct {
	Date     string
	CheckIn  string
	CheckOut string
}

type service struct {
	sess *session.Session
}

func NewService(sess *session.Session) (Service, error) {
	if sess == nil {
		return nil, fmt.Errorf("session required")
	}
	return &service{sess: sess}, nil
}

func (s *service) Record(memberID string, input RecordAttendanceInput) *models.Attendance {
	existing := make([]string, 0, len(s.sess.Attendance))
	for _, a := range s.sess.Attendance {
		existing = append(existing, a.ID)
	}

	record := models.Attendance{
		ID:       ids.NextID(idPrefix, existing),
		MemberID: memberID,
		Date:     input.Date,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
	}
	s.sess.Attendance = append(s.sess.Attendance, record)
	return &record
}

func (s *service) ForMember(memberID string) []models.Attendance {
	result := []models.Attendance{}
	for _, a := range s.sess.Attendance {
		if a.MemberID == memberID {
			result = append(result, a)
		}
	}
	return result
}

func (s *service) OnDate(date string) []models.Attendance {
	result := []models.Attendance{}
	for _, a := range s.sess.Attendance {
		if a.Date == date {
			result = append(result, a)
		}
	}
	return result
}

// InRange returns records with startDate <= date <= endDate. The comparison
// is lexicographic and only correct because dates are fixed-width
// YYYY-MM-DD strings.
func (s *service) InRange(startDate, endDate string) []models.Attendance {
	result := []models.Attendance{}
	for _, a := range s.sess.Attendance {
		if startDate <= a.Date && a.Date <= endDate {
			result = append(result, a)
		}
	}
	return result
}
