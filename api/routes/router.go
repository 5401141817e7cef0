package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/gymdesk-backend/api/controllers"
	"github.com/angelmondragon/gymdesk-backend/api/middleware"
	"github.com/angelmondragon/gymdesk-backend/internal/attendance"
	"github.com/angelmondragon/gymdesk-backend/internal/members"
	"github.com/angelmondragon/gymdesk-backend/internal/payments"
	"github.com/angelmondragon/gymdesk-backend/internal/session"
	"github.com/angelmondragon/gymdesk-backend/pkg/config"
	"github.com/angelmondragon/gymdesk-backend/pkg/logger"
	"github.com/angelmondragon/gymdesk-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sess *session.Session,
	memberSvc members.Service,
	paymentSvc payments.Service,
	attendanceSvc attendance.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.Serialize(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/members", func(r chi.Router) {
			r.Post("/", controllers.RegisterMember(memberSvc, sess, cfg.Plans, logg))
			r.Get("/", controllers.ListMembers(memberSvc, logg))
			r.Route("/{memberId}", func(r chi.Router) {
				r.Get("/", controllers.GetMember(memberSvc, logg))
				r.Patch("/", controllers.UpdateMember(memberSvc, sess, cfg.Plans, logg))
				r.Post("/cancel", controllers.CancelMember(memberSvc, sess, logg))
				r.Get("/payments", controllers.ListMemberPayments(paymentSvc, logg))
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", controllers.RecordPayment(paymentSvc, sess, logg))
			r.Get("/", controllers.ListPaymentsInMonth(paymentSvc, logg))
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", controllers.RecordAttendance(attendanceSvc, memberSvc, sess, logg))
			r.Get("/", controllers.ListAttendance(attendanceSvc, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/revenue-by-type", controllers.RevenueByType(sess, logg))
			r.Get("/busiest-weekday", controllers.BusiestWeekday(sess, logg))
			r.Get("/trainer-summary", controllers.TrainerSummary(sess, logg))
			r.Get("/financial-summary", controllers.FinancialSummary(paymentSvc, logg))
			r.Get("/expiring", controllers.ExpiringMembers(memberSvc, cfg.Alerts.ExpiryDays, logg))
		})
	})

	return r
}
