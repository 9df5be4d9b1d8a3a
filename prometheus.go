package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by
// instrumented vectors.
//
// An instance can be created only by the [Prometheus] function. The zero
// value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the pushed elements counter.
	Pushes prometheus.CounterOpts
	// Options for the inserted elements counter.
	Inserts prometheus.CounterOpts
	// Options for the erased elements counter.
	Erases prometheus.CounterOpts
	// Options for the buffer growths counter.
	Grows prometheus.CounterOpts
	// Options for the relocated elements counter.
	RelocatedElements prometheus.CounterOpts
	// Options for the capacity-after-growth histogram.
	GrowCapacity prometheus.HistogramOpts

	registerer prometheus.Registerer
	built      *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default
// parameters can be configured by passing configuration functions.
//
// A single config may be shared by any number of vectors; they feed the
// same collectors.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "vec"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Pushes: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of elements appended to instrumented vectors",
		},
		Inserts: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts",
			Help:      "Number of elements inserted into instrumented vectors",
		},
		Erases: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "erases",
			Help:      "Number of elements erased from instrumented vectors",
		},
		Grows: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of buffer growths performed by instrumented vectors",
		},
		RelocatedElements: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "relocated_elements",
			Help:      "Number of elements relocated during buffer growths",
		},
		GrowCapacity: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grow_capacity",
			Help:      "Capacity of instrumented vectors after a growth",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

// metrics builds the collectors on first use and registers them when a
// registerer was provided. Later calls return the same instance.
func (c *PrometheusConfig) metrics() *metrics {
	if c.built != nil {
		return c.built
	}

	m := metrics{
		pushes:       prometheus.NewCounter(c.Pushes),
		inserts:      prometheus.NewCounter(c.Inserts),
		erases:       prometheus.NewCounter(c.Erases),
		grows:        prometheus.NewCounter(c.Grows),
		relocated:    prometheus.NewCounter(c.RelocatedElements),
		growCapacity: prometheus.NewHistogram(c.GrowCapacity),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.pushes,
			m.inserts,
			m.erases,
			m.grows,
			m.relocated,
			m.growCapacity,
		)
	}

	c.built = &m

	return c.built
}
