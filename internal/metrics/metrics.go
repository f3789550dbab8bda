package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_events_total",
		Help: "Inbound dialog events by action code",
	}, []string{"action"})

	EventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bot_event_duration_seconds",
		Help:    "Dialog step handling time by action code",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})

	EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_entries_created_total",
		Help: "Production entries written through the confirm step",
	})

	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_reports_generated_total",
		Help: "Reports generated by kind",
	}, []string{"kind"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_notifications_total",
		Help: "Admin notification deliveries by outcome",
	}, []string{"outcome"})
)
