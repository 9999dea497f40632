package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RewardsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameRewardsPaid, Help: HelpTextRewardsPaid},
		[]string{LabelJob, LabelCategory},
	)

	RewardPay = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameRewardPay, Help: HelpTextRewardPay},
	)

	ExpGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameExpGranted, Help: HelpTextExpGranted},
		[]string{LabelJob},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameLevelUps, Help: HelpTextLevelUps},
		[]string{LabelJob},
	)

	JobChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameJobChanges, Help: HelpTextJobChanges},
		[]string{LabelJob},
	)

	SalaryPayments = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryPayments, Help: HelpTextSalaryPayments},
		[]string{LabelJob},
	)

	SalaryAmount = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryAmount, Help: HelpTextSalaryAmount},
	)

	SalaryFailures = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryFailures, Help: HelpTextSalaryFailures},
	)

	SalaryTicks = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSalaryTicks, Help: HelpTextSalaryTicks},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameCatalogReloads, Help: HelpTextCatalogReloads},
		[]string{LabelResult},
	)

	PlayerSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNamePlayerSessions, Help: HelpTextPlayerSessions},
		[]string{LabelKind},
	)
)
