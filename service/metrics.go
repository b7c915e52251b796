package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "burnout_predictions_total",
		Help: "Total number of risk assessments computed.",
	})
	predictionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "burnout_predictions_failed_total",
		Help: "Total number of rejected or failed assessments.",
	}, []string{"reason"})
	recordsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "burnout_records_stored_total",
		Help: "Total number of records appended to history.",
	})
	recordsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "burnout_records_failed_total",
		Help: "Total number of history append failures.",
	})
	riskPercentage = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "burnout_risk_percentage",
		Help:    "Distribution of computed risk percentages.",
		Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})
	extractorDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "burnout_extractor_duration_seconds",
		Help:    "Duration of sentiment extractor calls.",
		Buckets: []float64{0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
	})
)
