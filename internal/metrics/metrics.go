package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	registry *prometheus.Registry

	ConsoleKeystrokes      prometheus.Counter
	ConsoleKeystrokeErrors prometheus.Counter
	ConsoleEncodeDurations prometheus.Histogram

	MachinePlugboardPairs prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		ConsoleKeystrokes: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "console_keystrokes_total",
			Help: "The total number of keystrokes encoded during the session",
		}),
		ConsoleKeystrokeErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "console_keystroke_errors_total",
			Help: "The total number of keystrokes rejected as invalid input",
		}),
		ConsoleEncodeDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "console_encode_duration_seconds",
			Help:    "The time spent encoding a single keystroke",
			Buckets: prometheus.DefBuckets,
		}),
		MachinePlugboardPairs: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "machine_plugboard_pairs",
			Help: "The number of letter pairs connected on the machine's plugboard",
		}),
	}

	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
