// Package metrics Prometheus 指标定义
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lead_intention"

// Metrics holds every collector the service exports.
// Metrics 服务导出的全部指标
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	LeadsCreated        prometheus.Counter
	MailsSent           *prometheus.CounterVec
	ZipcodeLookups      *prometheus.CounterVec
	IntentionsByLinkage *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
// New 创建指标并注册到 reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		LeadsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_created_total",
			Help:      "Leads persisted.",
		}),
		MailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mails_sent_total",
			Help:      "Welcome emails by outcome.",
		}, []string{"outcome"}),
		ZipcodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zipcode_lookups_total",
			Help:      "Zip code lookups by outcome.",
		}, []string{"outcome"}),
		IntentionsByLinkage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intentions",
			Help:      "Intentions by link state.",
		}, []string{"state"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequests,
			m.HTTPDuration,
			m.LeadsCreated,
			m.MailsSent,
			m.ZipcodeLookups,
			m.IntentionsByLinkage,
		)
	}
	return m
}

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// SetIntentionCounts 更新已关联/未关联意向数量
func (m *Metrics) SetIntentionCounts(linked, unlinked int64) {
	m.IntentionsByLinkage.WithLabelValues("linked").Set(float64(linked))
	m.IntentionsByLinkage.WithLabelValues("unlinked").Set(float64(unlinked))
}
