package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelmondragon/gymdesk-backend/api/responses"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	"github.com/angelmondragon/gymdesk-backend/internal/payments"
	"github.com/angelmondragon/gymdesk-backend/internal/reports"
	"github.com/angelmondragon/gymdesk-backend/internal/session"
	pkgerrors "github.com/angelmondragon/gymdesk-backend/pkg/errors"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

type planRevenueResponse struct {
	MembershipType string `json:"membership_type"`
	Total          string `json:"total"`
}

func RevenueByType(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows := reports.RevenueByType(sess.Payments)
		out := make([]planRevenueResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, planRevenueResponse{
				MembershipType: row.MembershipType,
				Total:          row.Total.StringFixed(2),
			})
		}
		responses.WriteSuccess(w, out)
	}
}

type weekdayVisitsResponse struct {
	Weekday string `json:"weekday"`
	Visits  int    `json:"visits"`
}

type busiestWeekdayResponse struct {
	BusiestWeekday *string                 `json:"busiest_weekday"`
	Visits         []weekdayVisitsResponse `json:"visits"`
}

func BusiestWeekday(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		busiest, rows := reports.BusiestWeekday(sess.Attendance)

		out := busiestWeekdayResponse{Visits: make([]weekdayVisitsResponse, 0, len(rows))}
		if busiest != "" {
			out.BusiestWeekday = &busiest
		}
		for _, row := range rows {
			out.Visits = append(out.Visits, weekdayVisitsResponse{Weekday: row.Weekday, Visits: row.Visits})
		}
		responses.WriteSuccess(w, out)
	}
}

type trainerGroupResponse struct {
	Trainer string          `json:"trainer"`
	Members []models.Member `json:"members"`
}

func TrainerSummary(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := reports.GroupByTrainer(sess.Members)
		out := make([]trainerGroupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, trainerGroupResponse{Trainer: g.Trainer, Members: g.Members})
		}
		responses.WriteSuccess(w, out)
	}
}

type financialSummaryResponse struct {
	Year     string            `json:"year"`
	Month    string            `json:"month"`
	Count    int               `json:"count"`
	Total    string            `json:"total"`
	Payments []paymentResponse `json:"payments"`
}

func FinancialSummary(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		year := strings.TrimSpace(r.URL.Query().Get("year"))
		month := strings.TrimSpace(r.URL.Query().Get("month"))
		if year == "" || month == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "year and month are required"))
			return
		}

		monthPayments := svc.InMonth(year, month)
		summary := reports.Summarize(monthPayments)
		responses.WriteSuccess(w, financialSummaryResponse{
			Year:     year,
			Month:    month,
			Count:    summary.Count,
			Total:    summary.Total.StringFixed(2),
			Payments: paymentsToResponse(monthPayments),
		})
	}
}

type expiryReportResponse struct {
	Days    int             `json:"days"`
	Members []models.Member `json:"members"`
}

func ExpiringMembers(svc members.Service, defaultDays int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		days := defaultDays
		if daysParam := strings.TrimSpace(r.URL.Query().Get("days")); daysParam != "" {
			parsed, err := strconv.Atoi(daysParam)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid days"))
				return
			}
			days = parsed
		}

		expiring, err := svc.ExpiringWithin(days, time.Now())
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid days"))
			return
		}
		responses.WriteSuccess(w, expiryReportResponse{Days: days, Members: expiring})
	}
}
