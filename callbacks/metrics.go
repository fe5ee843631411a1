package callbacks

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an Observer that exports table activity to Prometheus.
type Metrics struct {
	registered prometheus.Counter
	released   prometheus.Counter
	live       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskbridge",
			Subsystem: "callbacks",
			Name:      "registered_total",
			Help:      "Completion callbacks registered in the handle table.",
		}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskbridge",
			Subsystem: "callbacks",
			Name:      "released_total",
			Help:      "Completion callbacks released from the handle table.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "taskbridge",
			Subsystem: "callbacks",
			Name:      "live",
			Help:      "Handles currently registered.",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.registered, m.released, m.live} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// OnCallbackEvent implements Observer.
func (m *Metrics) OnCallbackEvent(e Event) {
	switch e.Type {
	case EventRegistered:
		m.registered.Inc()
		m.live.Inc()
	case EventReleased:
		m.released.Inc()
		m.live.Dec()
	}
}
