// Package metrics exposes prometheus counters for simulation activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "wallsim_"

var simulationsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prefix + "simulations_total",
	Help: "Number of completed wall construction simulations",
})

var daysCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prefix + "days_simulated_total",
	Help: "Number of simulated construction days",
})

var sectionsProcessedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prefix + "sections_processed_total",
	Help: "Number of section-days of work processed",
})

var progressRecordsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prefix + "progress_records_total",
	Help: "Number of progress records persisted",
})

func RecordSimulation() {
	simulationsCounter.Inc()
}

func RecordDay(sectionsProcessed int) {
	daysCounter.Inc()
	sectionsProcessedCounter.Add(float64(sectionsProcessed))
}

func RecordProgressRecords(count int) {
	progressRecordsCounter.Add(float64(count))
}
