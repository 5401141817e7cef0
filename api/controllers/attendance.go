package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/gymdesk-backend/api/responses"
	"github.com/angelmondragon/gymdesk-backend/api/validators"
	"github.com/angelmondragon/gymdesk-backend/internal/attendance"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	pkgerrors "github.com/angelmondragon/gymdesk-backend/pkg/errors"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
)

// AttendanceSaver persists the attendance collection after a check-in.
type AttendanceSaver interface {
	SaveAttendance() error
}

type recordAttendanceRequest struct {
	MemberID string `json:"member_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn  string `json:"checkin" validate:"required"`
	CheckOut string `json:"checkout" validate:"required"`
}

// RecordAttendance gates new check-ins on a known member, the way the legacy
// desk flow did. The attendance log itself stays lenient so orphaned rows
// already on disk keep loading.
func RecordAttendance(svc attendance.Service, memberSvc members.Service, saver AttendanceSaver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload recordAttendanceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		memberID := strings.ToUpper(strings.TrimSpace(payload.MemberID))
		if memberSvc.Find(memberID) == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "member not found"))
			return
		}

		record := svc.Record(memberID, attendance.RecordAttendanceInput{
			Date:     payload.Date,
			CheckIn:  payload.CheckIn,
			CheckOut: payload.CheckOut,
		})
		if err := saver.SaveAttendance(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting attendance"))
			return
		}

		logg.Info(logg.WithMemberID(ctx, memberID), "attendance.recorded")
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// ListAttendance filters by exactly one selector: member_id, date, or a
// from/to range.
func ListAttendance(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		if memberID := strings.TrimSpace(query.Get("member_id")); memberID != "" {
			responses.WriteSuccess(w, svc.ForMember(strings.ToUpper(memberID)))
			return
		}
		if date := strings.TrimSpace(query.Get("date")); date != "" {
			responses.WriteSuccess(w, svc.OnDate(date))
			return
		}
		from := strings.TrimSpace(query.Get("from"))
		to := strings.TrimSpace(query.Get("to"))
		if from != "" && to != "" {
			responses.WriteSuccess(w, svc.InRange(from, to))
			return
		}

		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "provide member_id, date, or from and to"))
	}
}
