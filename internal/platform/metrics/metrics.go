// Package metrics counts record-store activity with Prometheus instruments.
// The console has no listener, so the registry is exported by writing a
// node-exporter textfile when the session ends.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ehr_console"

// Collector owns a private registry and the store instruments.
type Collector struct {
	registry *prometheus.Registry

	recordsLoaded  prometheus.Counter
	recordsAdded   prometheus.Counter
	appendFailures prometheus.Counter
	recordsInStore prometheus.Gauge
	actions        *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		recordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Patient records read from the backing file",
		}),
		recordsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_added_total",
			Help:      "Patient records appended to the backing file",
		}),
		appendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "append_failures_total",
			Help:      "Appends to the backing file that failed",
		}),
		recordsInStore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_in_store",
			Help:      "Patient records currently held in memory",
		}),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Operator actions by name",
			},
			[]string{"action"}, // "add", "display", "search", "summary", "exit", "invalid"
		),
	}

	c.registry.MustRegister(
		c.recordsLoaded,
		c.recordsAdded,
		c.appendFailures,
		c.recordsInStore,
		c.actions,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordsLoaded implements patient.Observer.
func (c *Collector) RecordsLoaded(n int) {
	c.recordsLoaded.Add(float64(n))
	c.recordsInStore.Set(float64(n))
}

// RecordAdded implements patient.Observer.
func (c *Collector) RecordAdded(total int) {
	c.recordsAdded.Inc()
	c.recordsInStore.Set(float64(total))
}

// AppendFailed implements patient.Observer.
func (c *Collector) AppendFailed() {
	c.appendFailures.Inc()
}

// Action counts one operator action.
func (c *Collector) Action(name string) {
	c.actions.WithLabelValues(name).Inc()
}

// WriteTextfile writes the registry in text exposition format to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
