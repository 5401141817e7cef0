package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/gymdesk-backend/api/responses"
	"github.com/angelmondragon/gymdesk-backend/api/validators"
	"github.com/angelmondragon/gymdesk-backend/internal/payments"
	pkgerrors "github.com/angelmondragon/gymdesk-backend/pkg/errors"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
	"github.com/angelmondragon/gymdesk-backend/pkg/store/models"
)

// PaymentSaver persists the collections a confirmed payment touches. A
// payment mutates the member as well, so both files get flushed.
type PaymentSaver interface {
	SaveMembers() error
	SavePayments() error
}

type recordPaymentRequest struct {
	MemberID       string `json:"member_id" validate:"required"`
	DatePaid       string `json:"date_paid" validate:"required,datetime=2006-01-02"`
	Amount         string `json:"amount" validate:"required"`
	Method         string `json:"method" validate:"required"`
	MembershipType string `json:"membership_type" validate:"required"`
}

type paymentResponse struct {
	PaymentID      string `json:"payment_id"`
	MemberID       string `json:"member_id"`
	DatePaid       string `json:"date_paid"`
	Amount         string `json:"amount"`
	Method         string `json:"method"`
	MembershipType string `json:"membership_type"`
}

type paymentReceiptResponse struct {
	Payment paymentResponse `json:"payment"`
	Member  *models.Member  `json:"member"`
}

func RecordPayment(svc payments.Service, saver PaymentSaver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload recordPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(payload.Amount))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid amount"))
			return
		}
		if !amount.IsPositive() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive"))
			return
		}

		memberID := strings.ToUpper(strings.TrimSpace(payload.MemberID))
		payment, member := svc.Record(memberID, payments.RecordPaymentInput{
			DatePaid:       payload.DatePaid,
			Amount:         amount,
			Method:         payload.Method,
			MembershipType: payload.MembershipType,
		})
		if payment == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "member not found, payment not recorded"))
			return
		}
		if err := saver.SavePayments(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting payments"))
			return
		}
		if err := saver.SaveMembers(); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting members"))
			return
		}

		logg.Info(logg.WithMemberID(ctx, memberID), "payment.recorded")
		responses.WriteSuccessStatus(w, http.StatusCreated, paymentReceiptResponse{
			Payment: paymentToResponse(*payment),
			Member:  member,
		})
	}
}

func ListMemberPayments(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, paymentsToResponse(svc.ForMember(memberIDParam(r))))
	}
}

func ListPaymentsInMonth(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		year := strings.TrimSpace(r.URL.Query().Get("year"))
		month := strings.TrimSpace(r.URL.Query().Get("month"))
		if year == "" || month == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "year and month are required"))
			return
		}

		responses.WriteSuccess(w, paymentsToResponse(svc.InMonth(year, month)))
	}
}

func paymentToResponse(p models.Payment) paymentResponse {
	return paymentResponse{
		PaymentID:      p.ID,
		MemberID:       p.MemberID,
		DatePaid:       p.DatePaid,
		Amount:         p.Amount.StringFixed(2),
		Method:         p.Method,
		MembershipType: p.MembershipType,
	}
}

func paymentsToResponse(payments []models.Payment) []paymentResponse {
	result := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, paymentToResponse(p))
	}
	return result
}
