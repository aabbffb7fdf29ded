package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitlife_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_logins_total",
			Help: "Login attempts by principal kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	MembersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitlife_members_created_total",
			Help: "Total number of members created",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"plan"},
	)

	PaymentAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_payment_amount_total",
			Help: "Sum of recorded payment amounts",
		},
		[]string{"plan"},
	)

	RemindersSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_reminders_sent_total",
			Help: "Total number of reminders issued",
		},
		[]string{"channel"},
	)

	AnnouncementsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitlife_announcements_total",
			Help: "Total number of announcements posted",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitlife_emails_sent_total",
			Help: "Total number of emails processed",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitlife_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordLogin(kind, outcome string) {
	LoginsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordMemberCreated() {
	MembersCreatedTotal.Inc()
}

func RecordPayment(plan string, amount float64) {
	PaymentsTotal.WithLabelValues(plan).Inc()
	PaymentAmountTotal.WithLabelValues(plan).Add(amount)
}

func RecordReminder(channel string) {
	RemindersSentTotal.WithLabelValues(channel).Inc()
}

func RecordAnnouncement() {
	AnnouncementsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
