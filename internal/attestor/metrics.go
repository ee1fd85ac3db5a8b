package attestor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "dvpn_attestor"

var (
	promTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "transactions_total",
		Help:      "Settlement contract transactions sent by the attestor, by method and result",
	}, []string{"method", "result"})

	promTransactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "transaction_duration_seconds",
		Help:      "Time from the first send attempt to the transaction being accepted in a block",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"method"})

	promAttestedBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "attested_bytes_total",
		Help:      "Traffic reported to the settlement contract",
	}, []string{"kind"})
)
