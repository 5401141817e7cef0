package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

// memStore keeps everything in memory so controller tests can run the real
// services and session against seeded collections.
type memStore struct {
	members    []models.Member
	payments   []models.Payment
	attendance []models.Attendance

	memberSaves     int
	paymentSaves    int
	attendanceSaves int
	failSaves       bool
}

func (s *memStore) LoadMembers() ([]models.Member, error)       { return s.members, nil }
func (s *memStore) LoadPayments() ([]models.Payment, error)     { return s.payments, nil }
func (s *memStore) LoadAttendance() ([]models.Attendance, error) { return s.attendance, nil }

func (s *memStore) SaveMembers(members []models.Member) error {
	if s.failSaves {
		return errors.New("disk full")
	}
	s.memberSaves++
	s.members = members
	return nil
}

func (s *memStore) SavePayments(payments []models.Payment) error {
	if s.failSaves {
		return errors.New("disk full")
	}
	s.paymentSaves++
	s.payments = payments
	return nil
}

func (s *memStore) SaveAttendance(attendance []models.Attendance) error {
	if s.failSaves {
		return errors.New("disk full")
	}
	s.attendanceSaves++
	s.attendance = attendance
	return nil
}

func newTestSession(t *testing.T, store *memStore) *session.Session {
	t.Helper()
	sess, err := session.Load(store)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return sess
}

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal error envelope: %v", err)
	}
	return envelope.Error.Code
}

func seedMember(id, name, plan, endDate, status, trainer string) models.Member {
	return models.Member{
		ID:             id,
		Name:           name,
		Age:            30,
		Phone:          "555-0100",
		MembershipType: plan,
		StartDate:      "2025-01-01",
		EndDate:        endDate,
		Status:         enums.MemberStatus(status),
		Trainer:        trainer,
		Schedule:       "morning",
	}
}
