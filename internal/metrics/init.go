package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	lookupOps := []string{
		"is_type",
		"ext_from_type",
		"ext3_from_type",
		"is_ext",
		"type_from_ext",
		"alt_types",
	}

	for _, op := range lookupOps {
		LookupsTotal.WithLabelValues(op, ResultHit)
		LookupsTotal.WithLabelValues(op, ResultMiss)
	}

	TypesAdded.WithLabelValues("registered")
	TypesAdded.WithLabelValues("ignored")
}
