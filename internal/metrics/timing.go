package metrics

import "time"

// ObserveOperation starts timing a forge operation. The returned func records
// the duration and counts the operation under the given result label.
func ObserveOperation(operation string) func(result string) {
	start := time.Now()
	return func(result string) {
		ItemOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		ItemOperationsTotal.WithLabelValues(operation, result).Inc()
	}
}
