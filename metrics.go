package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pushes       prometheus.Counter
	inserts      prometheus.Counter
	erases       prometheus.Counter
	grows        prometheus.Counter
	relocated    prometheus.Counter
	growCapacity prometheus.Histogram
}

// All observers are nil-safe, so uninstrumented vectors pay one nil check.

func (m *metrics) observePush() {
	if m == nil {
		return
	}
	m.pushes.Inc()
}

func (m *metrics) observeInsert() {
	if m == nil {
		return
	}
	m.inserts.Inc()
}

func (m *metrics) observeErase() {
	if m == nil {
		return
	}
	m.erases.Inc()
}

func (m *metrics) observeGrow(newCapacity, relocated int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.relocated.Add(float64(relocated))
	m.growCapacity.Observe(float64(newCapacity))
}
