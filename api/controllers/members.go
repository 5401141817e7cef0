package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gymdesk-backend/api/responses"
	"github.com/angelmondragon/gymdesk-backend/api/validators"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	"github.com/angelmondragon/gymdesk-backend/pkg/config"
	"github.com/angelmondragon/gymdesk-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/gymdesk-backend/pkg/errors"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
)

// MemberSaver persists the member collection after a confirmed mutation.
type MemberSaver interface {
	SaveMembers() error
}

type registerMemberRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required,min=10,max=100"`
	Phone          string `json:"phone" validate:"required"`
	MembershipType string `json:"membership_type" validate:"required"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Trainer        string `json:"trainer" validate:"required"`
	Schedule       string `json:"schedule" validate:"required"`
}

type updateMemberRequest struct {
	Name           string `json:"name,omitempty"`
	Age            *int   `json:"age,omitempty" validate:"omitempty,min=10,max=100"`
	Phone          string `json:"phone,omitempty"`
	MembershipType string `json:"membership_type,omitempty"`
	StartDate      string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status,omitempty"`
	Trainer        string `json:"trainer,omitempty"`
	Schedule       string `json:"schedule,omitempty"`
}

func RegisterMember(svc members.Service, saver MemberSaver, plans config.PlansConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload registerMemberRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !plans.Contains(payload.MembershipType) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown membership type").
				WithDetails(map[string]any{"membership_type": payload.MembershipType, "known": plans.Types}))
			return
		}

		member := svc.Register(members.RegisterMemberInput{
			Name:           payload.Name,
			Age:            payload.Age,
			Phone:          payload.Phone,
			MembershipType: payload.MembershipType,
			StartDate:      payload.StartDate,
			EndDate:        payload.EndDate,
			Trainer:        payload.Trainer,
			Schedule:       payload.Schedule,
		})
		if err := saver.SaveMembers(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting members"))
			return
		}

		logg.Info(logg.WithMemberID(ctx, member.ID), "member.registered")
		responses.WriteSuccessStatus(w, http.StatusCreated, member)
	}
}

func ListMembers(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if daysParam := strings.TrimSpace(r.URL.Query().Get("expiring_within_days")); daysParam != "" {
			days, err := strconv.Atoi(daysParam)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid expiring_within_days"))
				return
			}
			expiring, err := svc.ExpiringWithin(days, time.Now())
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid expiring_within_days"))
				return
			}
			responses.WriteSuccess(w, expiring)
			return
		}

		statusParam := strings.TrimSpace(r.URL.Query().Get("status"))
		if statusParam == "" {
			responses.WriteSuccess(w, svc.List())
			return
		}

		status, err := enums.ParseMemberStatus(statusParam)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}
		switch status {
		case enums.MemberStatusActive:
			responses.WriteSuccess(w, svc.Active())
		case enums.MemberStatusExpired:
			responses.WriteSuccess(w, svc.Expired())
		default:
			responses.WriteSuccess(w, svc.Pending())
		}
	}
}

func GetMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		member := svc.Find(memberIDParam(r))
		if member == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "member not found"))
			return
		}
		responses.WriteSuccess(w, member)
	}
}

func UpdateMember(svc members.Service, saver MemberSaver, plans config.PlansConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload updateMemberRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status := ""
		if payload.Status != "" {
			parsed, err := enums.ParseMemberStatus(payload.Status)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			status = string(parsed)
		}
		if payload.MembershipType != "" && !plans.Contains(payload.MembershipType) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown membership type"))
			return
		}

		member := svc.Update(memberIDParam(r), members.UpdateMemberInput{
			Name:           payload.Name,
			Age:            payload.Age,
			Phone:          payload.Phone,
			MembershipType: payload.MembershipType,
			StartDate:      payload.StartDate,
			EndDate:        payload.EndDate,
			Status:         status,
			Trainer:        payload.Trainer,
			Schedule:       payload.Schedule,
		})
		if member == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "member not found"))
			return
		}
		if err := saver.SaveMembers(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting members"))
			return
		}

		logg.Info(logg.WithMemberID(ctx, member.ID), "member.updated")
		responses.WriteSuccess(w, member)
	}
}

func CancelMember(svc members.Service, saver MemberSaver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		member := svc.Cancel(memberIDParam(r))
		if member == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "member not found"))
			return
		}
		if err := saver.SaveMembers(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting members"))
			return
		}

		logg.Info(logg.WithMemberID(ctx, member.ID), "member.cancelled")
		responses.WriteSuccess(w, member)
	}
}

// memberIDParam mirrors the legacy tool: operator-entered ids are trimmed
// and uppercased before lookup.
func memberIDParam(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "memberId")))
}
