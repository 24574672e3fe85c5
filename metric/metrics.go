// Package metric provides prometheus instrumentation for registry queries
// and vocabulary lookups.
package metric

import (
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/componentvocab/errors"
	"github.com/c360/componentvocab/registry"
)

// Metrics contains the module's platform metrics.
type Metrics struct {
	// RegistryLookups counts registry queries by contract and outcome.
	RegistryLookups *prometheus.CounterVec
	// VocabularyBuilds counts vocabulary constructions by kind.
	VocabularyBuilds *prometheus.CounterVec
	// TermLookupFailures counts failed term lookups by lookup key kind.
	TermLookupFailures *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		RegistryLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "componentvocab",
				Subsystem: "registry",
				Name:      "lookups_total",
				Help:      "Total number of registry queries",
			},
			[]string{"interface", "result"},
		),
		VocabularyBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "componentvocab",
				Subsystem: "vocabulary",
				Name:      "builds_total",
				Help:      "Total number of vocabulary constructions",
			},
			[]string{"kind"},
		),
		TermLookupFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "componentvocab",
				Subsystem: "vocabulary",
				Name:      "term_lookup_failures_total",
				Help:      "Total number of failed term lookups",
			},
			[]string{"kind"},
		),
	}
}

// Register registers all collectors with the given registerer.
// Prometheus-level duplicate registrations surface as invalid errors.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.RegistryLookups,
		m.VocabularyBuilds,
		m.TermLookupFailures,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			var alreadyRegErr prometheus.AlreadyRegisteredError
			if stderrors.As(err, &alreadyRegErr) {
				return errors.WrapInvalid(err, "Metrics", "Register", "duplicate collector registration")
			}
			return errors.WrapFatal(err, "Metrics", "Register", "collector registration")
		}
	}
	return nil
}

// CountVocabularyBuild records one vocabulary construction of the given
// kind (e.g., "utility", "utility-names").
func (m *Metrics) CountVocabularyBuild(kind string) {
	m.VocabularyBuilds.WithLabelValues(kind).Inc()
}

// CountLookupFailure records one failed term lookup, classifying the
// lookup key kind from the error. Errors that are not term lookup
// failures are ignored.
func (m *Metrics) CountLookupFailure(err error) {
	switch {
	case errors.IsNotFoundByValue(err):
		m.TermLookupFailures.WithLabelValues("value").Inc()
	case errors.IsNotFoundByToken(err):
		m.TermLookupFailures.WithLabelValues("token").Inc()
	}
}

// InstrumentedReader decorates a registry.Reader with lookup counters.
// Vocabularies built on the decorated reader are metered without knowing
// about prometheus.
type InstrumentedReader struct {
	reader  registry.Reader
	metrics *Metrics
}

var _ registry.Reader = (*InstrumentedReader)(nil)

// NewInstrumentedReader wraps reader so every query increments
// RegistryLookups.
func NewInstrumentedReader(reader registry.Reader, metrics *Metrics) *InstrumentedReader {
	return &InstrumentedReader{reader: reader, metrics: metrics}
}

// UtilitiesFor implements registry.Reader.
func (r *InstrumentedReader) UtilitiesFor(iface *registry.Interface) []registry.NamedUtility {
	utilities := r.reader.UtilitiesFor(iface)
	r.metrics.RegistryLookups.WithLabelValues(qualified(iface), outcome(len(utilities) > 0)).Inc()
	return utilities
}

// QueryUtility implements registry.Reader.
func (r *InstrumentedReader) QueryUtility(iface *registry.Interface, name string) (any, bool) {
	utility, ok := r.reader.QueryUtility(iface, name)
	r.metrics.RegistryLookups.WithLabelValues(qualified(iface), outcome(ok)).Inc()
	return utility, ok
}

func qualified(iface *registry.Interface) string {
	if iface == nil {
		return ""
	}
	return iface.QualifiedName()
}

func outcome(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
