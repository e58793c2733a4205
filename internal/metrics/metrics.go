package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders successfully written to the store.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_svc_orders_created_total",
		Help: "Number of orders persisted.",
	})

	// SubmissionFailures counts pipeline failures by step.
	SubmissionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_svc_submission_failures_total",
		Help: "Number of failed order submissions by pipeline step.",
	}, []string{"step"})

	// EmailsSent counts order notification emails accepted by the mail
	// provider.
	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_svc_notification_emails_sent_total",
		Help: "Number of order notification emails sent.",
	})

	// EmailsFailed counts notification emails the provider rejected.
	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_svc_notification_emails_failed_total",
		Help: "Number of order notification emails that failed to send.",
	})
)

const (
	// StepPersist labels failures of the order write.
	StepPersist = "persist"
	// StepNotify labels failures of the notification call.
	StepNotify = "notify"
)
