package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Service bundles the broker's prometheus collectors. They are registered on
// the given registerer, tests pass a fresh registry to avoid duplicate
// registration across server instances.
type Service struct {
	PendingDepth     prometheus.GaugeFunc
	BuildsTotal      *prometheus.CounterVec
	SubmissionsTotal *prometheus.CounterVec
	BuildDuration    prometheus.Histogram

	reg prometheus.Registerer
}

const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

func New(reg prometheus.Registerer) *Service {
	s := &Service{
		reg: reg,
		BuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "broker_builds_total",
			Help: "Unsigned transaction builds by operation and outcome.",
		}, []string{"operation", "outcome"}),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "broker_submissions_total",
			Help: "Signed transaction submissions by outcome.",
		}, []string{"outcome"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "broker_build_duration_seconds",
			Help:    "Latency of unsigned transaction builds against the execution engine.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(s.BuildsTotal, s.SubmissionsTotal, s.BuildDuration)

	return s
}

// RegisterPendingDepth exposes the pending store depth as a gauge sampled on
// every scrape, so entries removed by TTL expiry are reflected without any
// bookkeeping on the hot path.
func (s *Service) RegisterPendingDepth(sample func() float64) {
	s.PendingDepth = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "broker_pending_transactions",
		Help: "Number of unsigned transactions currently awaiting a signature.",
	}, sample)

	s.reg.MustRegister(s.PendingDepth)
}

// BuildDurationTimer returns a running timer observing into BuildDuration.
func (s *Service) BuildDurationTimer() *prometheus.Timer {
	return prometheus.NewTimer(s.BuildDuration)
}
