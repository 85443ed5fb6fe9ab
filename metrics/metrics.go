package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Calculation kinds used as metric label values.
const (
	KindPersonal        = "personal"
	KindCompany         = "company"
	KindShareTransfer   = "share_transfer"
	KindCompensation    = "compensation"
	KindRecommendations = "recommendations"
)

// EngineMetrics captures calculation traffic and ruleset churn.
type EngineMetrics struct {
	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	assessmentsSaved    *prometheus.CounterVec
	rulesUpdates        prometheus.Counter
}

var (
	engineMetricsOnce sync.Once
	engineMetrics     *EngineMetrics
)

// Engine returns the singleton engine metrics registry.
func Engine() *EngineMetrics {
	engineMetricsOnce.Do(func() {
		engineMetrics = newEngineMetrics(prometheus.DefaultRegisterer)
	})
	return engineMetrics
}

func newEngineMetrics(registerer prometheus.Registerer) *EngineMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taxengine_calculations_total",
		Help: "Tax calculations served, by kind.",
	}, []string{"kind"})
	calculationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taxengine_calculation_duration_seconds",
		Help:    "Tax calculation latency, by kind.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"kind"})
	assessmentsSaved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taxengine_assessments_saved_total",
		Help: "Assessments persisted for history, by kind.",
	}, []string{"kind"})
	rulesUpdates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxengine_rules_updates_total",
		Help: "Ruleset swaps from admin updates.",
	})

	registerer.MustRegister(
		calculations,
		calculationDuration,
		assessmentsSaved,
		rulesUpdates,
	)

	return &EngineMetrics{
		calculations:        calculations,
		calculationDuration: calculationDuration,
		assessmentsSaved:    assessmentsSaved,
		rulesUpdates:        rulesUpdates,
	}
}

// IncCalculation increments the calculation counter for a kind.
func (m *EngineMetrics) IncCalculation(kind string) {
	if m == nil || m.calculations == nil {
		return
	}
	m.calculations.WithLabelValues(kind).Inc()
}

// ObserveCalculationDuration records calculation latency in seconds.
func (m *EngineMetrics) ObserveCalculationDuration(kind string, duration time.Duration) {
	if m == nil || m.calculationDuration == nil {
		return
	}
	m.calculationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// IncAssessmentSaved increments the persisted assessment counter for a kind.
func (m *EngineMetrics) IncAssessmentSaved(kind string) {
	if m == nil || m.assessmentsSaved == nil {
		return
	}
	m.assessmentsSaved.WithLabelValues(kind).Inc()
}

// IncRulesUpdate counts an admin ruleset swap.
func (m *EngineMetrics) IncRulesUpdate() {
	if m == nil || m.rulesUpdates == nil {
		return
	}
	m.rulesUpdates.Inc()
}
