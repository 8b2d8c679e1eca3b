package metrics

import "github.com/prometheus/client_golang/prometheus"

// Record lifecycle counters, registered explicitly from main (no init()).
var (
	// RecordsCreatedTotal counts successfully created records.
	RecordsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strdex",
		Name:      "records_created_total",
		Help:      "Total number of records created",
	})

	// RecordsDeletedTotal counts successfully deleted records.
	RecordsDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "strdex",
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted",
	})
)

// RegisterRecordMetrics registers the record lifecycle counters.
func RegisterRecordMetrics() {
	prometheus.MustRegister(RecordsCreatedTotal)
	prometheus.MustRegister(RecordsDeletedTotal)
}
