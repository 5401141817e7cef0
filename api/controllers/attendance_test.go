package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/gymdesk-backend/internal/attendance"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

func TestRecordAttendanceSuccess(t *testing.T) {
	store := &memStore{members: []models.Member{seedMember("M001", "Ana", "Monthly", "2025-06-01", "active", "Luis")}}
	sess := newTestSession(t, store)
	attendanceSvc, err := attendance.NewService(sess)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	memberSvc, _ := members.NewService(sess)
	handler := RecordAttendance(attendanceSvc, memberSvc, sess, newTestLogger())

	body := `{"member_id":"m001","date":"2025-02-10","checkin":"08:30","checkout":"10:00"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/attendance", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var record models.Attendance
	decodeData(t, resp, &record)
	if record.ID != "A001" {
		t.Fatalf("expected A001 got %s", record.ID)
	}
	if record.MemberID != "M001" {
		t.Fatalf("member id must be uppercased, got %s", record.MemberID)
	}
	if store.attendanceSaves != 1 {
		t.Fatalf("expected one save, got %d", store.attendanceSaves)
	}
}

func TestRecordAttendanceUnknownMember(t *testing.T) {
	store := &memStore{}
	sess := newTestSession(t, store)
	attendanceSvc, _ := attendance.NewService(sess)
	memberSvc, _ := members.NewService(sess)
	handler := RecordAttendance(attendanceSvc, memberSvc, sess, newTestLogger())

	body := `{"member_id":"M404","date":"2025-02-10","checkin":"08:30","checkout":"10:00"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/attendance", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if len(sess.Attendance) != 0 {
		t.Fatal("rejected check-in must not append to the log")
	}
}

func TestListAttendanceSelectors(t *testing.T) {
	store := &memStore{attendance: []models.Attendance{
		{ID: "A001", MemberID: "M001", Date: "2025-02-01", CheckIn: "08:00", CheckOut: "09:00"},
		{ID: "A002", MemberID: "M002", Date: "2025-02-02", CheckIn: "18:00", CheckOut: "19:30"},
		{ID: "A003", MemberID: "M001", Date: "2025-02-03", CheckIn: "08:15", CheckOut: "09:10"},
	}}
	sess := newTestSession(t, store)
	svc, _ := attendance.NewService(sess)
	handler := ListAttendance(svc, newTestLogger())

	cases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "by member", query: "member_id=m001", wantIDs: []string{"A001", "A003"}},
		{name: "by date", query: "date=2025-02-02", wantIDs: []string{"A002"}},
		{name: "by range", query: "from=2025-02-02&to=2025-02-03", wantIDs: []string{"A002", "A003"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/attendance?"+tc.query, nil)
			resp := httptest.NewRecorder()
			handler(resp, req)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d", resp.Code)
			}
			var listed []models.Attendance
			decodeData(t, resp, &listed)
			if len(listed) != len(tc.wantIDs) {
				t.Fatalf("expected %d records got %d", len(tc.wantIDs), len(listed))
			}
			for i, want := range tc.wantIDs {
				if listed[i].ID != want {
					t.Fatalf("expected %s at %d, got %s", want, i, listed[i].ID)
				}
			}
		})
	}
}

func TestListAttendanceNoSelector(t *testing.T) {
	sess := newTestSession(t, &memStore{})
	svc, _ := attendance.NewService(sess)
	handler := ListAttendance(svc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/attendance", nil)
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %s", code)
	}
}
