package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exploraneiva",
			Name:      "api_requests_total",
			Help:      "Requests sent to the tourism API, by method and outcome",
		},
		[]string{"method", "status"},
	)
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exploraneiva",
			Name:      "api_request_duration_seconds",
			Help:      "Latency of requests sent to the tourism API",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
	invoiceDocumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exploraneiva",
			Name:      "invoice_documents_total",
			Help:      "Invoice PDF documents generated, by result",
		},
		[]string{"result"},
	)
)
