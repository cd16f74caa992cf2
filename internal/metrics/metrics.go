package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(value float64, labels ...string)
}

type Counters struct {
	LogsIngested Counter

	AnomaliesDetected Counter

	HttpRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(value float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(value)
}

func New() *Counters {
	return &Counters{
		LogsIngested: NewPrometheusCounter(
			"logs_ingested_total",
			"Number of log records ingested per upload format",
			[]string{"format"},
		),
		AnomaliesDetected: NewPrometheusCounter(
			"anomalies_detected_total",
			"Number of records flagged anomalous",
			[]string{"format"},
		),
		HttpRequests: NewPrometheusCounter(
			"http_requests_total",
			"Number of API requests",
			[]string{"method", "status"},
		),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsIngested := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_ingested_total",
			Help: "Number of log records ingested per upload format",
		}, []string{"format"}),
	}

	anomaliesDetected := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "anomalies_detected_total",
			Help: "Number of records flagged anomalous",
		}, []string{"format"}),
	}

	httpRequests := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of API requests",
		}, []string{"method", "status"}),
	}

	reg.MustRegister(logsIngested.counter)
	reg.MustRegister(anomaliesDetected.counter)
	reg.MustRegister(httpRequests.counter)

	return &Counters{
		LogsIngested:      logsIngested,
		AnomaliesDetected: anomaliesDetected,
		HttpRequests:      httpRequests,
	}
}
