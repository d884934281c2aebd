// Package metrics exports Prometheus collectors for use cases, LLM calls and
// HTTP requests.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/service"
)

const namespace = "rich365"

// Metrics holds the registered collectors.
type Metrics struct {
	registry prometheus.Gatherer

	useCaseDuration *prometheus.HistogramVec
	useCaseErrors   *prometheus.CounterVec
	llmCalls        *prometheus.CounterVec
	llmLatency      *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	checkIns        prometheus.Counter
}

// New registers all collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Latency of service use cases.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
		useCaseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_case_errors_total",
			Help:      "Count of failed service use cases.",
		}, []string{"use_case"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "LLM calls by task and outcome code.",
		}, []string{"task", "code"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Latency of LLM calls including retries.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 180},
		}, []string{"task"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_ins_total",
			Help:      "Successful daily check-ins.",
		}),
	}

	collectors := []prometheus.Collector{
		m.useCaseDuration, m.useCaseErrors, m.llmCalls, m.llmLatency,
		m.httpRequests, m.httpDuration, m.checkIns,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

// MustNew is New that panics on registration failure.
func MustNew(reg *prometheus.Registry) *Metrics {
	m, err := New(reg)
	if err != nil {
		panic(err)
	}
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveUseCase implements service.UseCaseObserver.
func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	if m == nil {
		return
	}
	m.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
	if !event.Success() {
		m.useCaseErrors.WithLabelValues(event.Name).Inc()
		return
	}
	if event.Name == "check-in" {
		m.checkIns.Inc()
	}
}

// OnCallComplete implements llm.Observer.
func (m *Metrics) OnCallComplete(event llm.LLMCallEvent) {
	if m == nil {
		return
	}
	code := "OK"
	if !event.Success {
		code = event.ErrorCode
	}
	m.llmCalls.WithLabelValues(string(event.Task), code).Inc()
	m.llmLatency.WithLabelValues(string(event.Task)).Observe(float64(event.LatencyMs) / 1000)
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
