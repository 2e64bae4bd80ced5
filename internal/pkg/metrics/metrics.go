// Package metrics exposes the Prometheus counters of the pipeline: units
// moved through each stage, replant queue outcomes, audit events and HTTP
// request latency.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "perfumery"

// Metrics owns a dedicated registry so tests can create as many instances
// as they need.
type Metrics struct {
	registry *prometheus.Registry

	plantsPlanted    prometheus.Counter
	plantsHarvested  prometheus.Counter
	perfumesProduced *prometheus.CounterVec // by type
	packagesStored   prometheus.Counter
	packagesSent     *prometheus.CounterVec // by center
	ordersCreated    prometheus.Counter
	replantTasks     *prometheus.CounterVec // by outcome: done, retried, failed
	auditEvents      *prometheus.CounterVec // by level

	requestDuration *prometheus.HistogramVec // by method, route, status
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		plantsPlanted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "production",
			Name:      "plants_planted_total",
			Help:      "Plants planted, including replants",
		}),
		plantsHarvested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "production",
			Name:      "plants_harvested_total",
			Help:      "Plants moved to harvested",
		}),
		perfumesProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "processing",
			Name:      "perfumes_produced_total",
			Help:      "Bottles produced by processing",
		}, []string{"type"}),
		packagesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "packages_stored_total",
			Help:      "Packages created in storage",
		}),
		packagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "packages_sent_total",
			Help:      "Packages sent by distribution center",
		}, []string{"center"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "orders_created_total",
			Help:      "Sale orders shipped",
		}),
		replantTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "replant",
			Name:      "tasks_total",
			Help:      "Replant task attempts by outcome",
		}, []string{"outcome"}),
		auditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_total",
			Help:      "Audit events published by level",
		}, []string{"level"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.plantsPlanted,
		m.plantsHarvested,
		m.perfumesProduced,
		m.packagesStored,
		m.packagesSent,
		m.ordersCreated,
		m.replantTasks,
		m.auditEvents,
		m.requestDuration,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) PlantsPlanted(n int) {
	m.plantsPlanted.Add(float64(n))
}

func (m *Metrics) PlantsHarvested(n int) {
	m.plantsHarvested.Add(float64(n))
}

func (m *Metrics) PerfumesProduced(kind string, n int) {
	m.perfumesProduced.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) PackagesStored(n int) {
	m.packagesStored.Add(float64(n))
}

func (m *Metrics) PackagesSent(center string, n int) {
	m.packagesSent.WithLabelValues(center).Add(float64(n))
}

func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

func (m *Metrics) ReplantTasks(done, retried, failed int) {
	m.replantTasks.WithLabelValues("done").Add(float64(done))
	m.replantTasks.WithLabelValues("retried").Add(float64(retried))
	m.replantTasks.WithLabelValues("failed").Add(float64(failed))
}

func (m *Metrics) AuditEvent(level string) {
	m.auditEvents.WithLabelValues(level).Inc()
}

// ObserveRequest records one served request. route is the registered
// path pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
