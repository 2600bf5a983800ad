package index

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of an index.
type Metrics struct {
	DocumentsIndexed prometheus.Counter
	TermsWritten     *prometheus.CounterVec
	DocCacheHits     prometheus.Counter
	DocCacheMisses   prometheus.Counter
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	documentsIndexed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fieldstore_documents_indexed_total",
		Help: "Total documents added to the index",
	})

	termsWritten := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldstore_terms_written_total",
		Help: "Total postings written, per field",
	}, []string{"field"})

	docCacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fieldstore_doc_cache_hits_total",
		Help: "Stored document lookups served from the cache",
	})

	docCacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fieldstore_doc_cache_misses_total",
		Help: "Stored document lookups that went to the database",
	})

	reg.MustRegister(documentsIndexed, termsWritten, docCacheHits, docCacheMisses)

	return &Metrics{
		DocumentsIndexed: documentsIndexed,
		TermsWritten:     termsWritten,
		DocCacheHits:     docCacheHits,
		DocCacheMisses:   docCacheMisses,
	}
}

func (m *Metrics) documentIndexed() {
	if m != nil {
		m.DocumentsIndexed.Inc()
	}
}

func (m *Metrics) termsWritten(field string, n int) {
	if m != nil && n > 0 {
		m.TermsWritten.WithLabelValues(field).Add(float64(n))
	}
}

func (m *Metrics) cacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.DocCacheHits.Inc()
	} else {
		m.DocCacheMisses.Inc()
	}
}
