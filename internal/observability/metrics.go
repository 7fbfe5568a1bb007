package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "journey_globe"

// Metrics holds the Prometheus counters, histograms, and gauges for the engine.
type Metrics struct {
	SessionsActive  prometheus.Gauge
	SessionsCreated prometheus.Counter
	SessionsEvicted prometheus.Counter

	// Render loop metrics.
	LoopRunning        prometheus.Gauge
	FramesDrawn        prometheus.Counter
	FrameDrawErrors    prometheus.Counter
	FrameBuildDuration prometheus.Histogram

	// Input metrics.
	ScrollEvents *prometheus.CounterVec // labels: result={accepted,throttled,ignored}
	Swipes       *prometheus.CounterVec // labels: direction={forward,backward,none}, outcome={moved,unchanged,ignored,no_viewport}

	// Border overlay metrics.
	BorderRequests      *prometheus.CounterVec // labels: source={primary,fallback}, outcome={success,error}
	BorderCache         *prometheus.CounterVec // labels: result={hit,miss}
	BorderFetchDuration prometheus.Histogram
	BordersEnabled      prometheus.Gauge

	HTTPRequests *prometheus.CounterVec // labels: route, status
}

func newMetrics(help bool) *Metrics {
	h := func(s string) string {
		if help {
			return s
		}
		return ""
	}
	return &Metrics{
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      h("Viewer sessions currently held in memory."),
		}),
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      h("Total viewer sessions created."),
		}),
		SessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      h("Total viewer sessions evicted after going idle."),
		}),
		LoopRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "render_loop_running",
			Help:      h("1 when the render loop is active, 0 when shut down."),
		}),
		FramesDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_drawn_total",
			Help:      h("Total frames handed to the render surface."),
		}),
		FrameDrawErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frame_draw_errors_total",
			Help:      h("Total frames the render surface rejected."),
		}),
		FrameBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_build_duration_seconds",
			Help:      h("Time to resolve state and build one frame."),
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.033},
		}),
		ScrollEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scroll_events_total",
			Help:      h("Scroll events by result."),
		}, []string{"result"}),
		Swipes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swipes_total",
			Help:      h("Touch swipes by direction and outcome."),
		}, []string{"direction", "outcome"}),
		BorderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "border_requests_total",
			Help:      h("Border GeoJSON downloads by source and outcome."),
		}, []string{"source", "outcome"}),
		BorderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "border_cache_total",
			Help:      h("Border ring cache lookups by result."),
		}, []string{"result"}),
		BorderFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "border_fetch_duration_seconds",
			Help:      h("Border GeoJSON download duration in seconds."),
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		BordersEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "borders_enabled",
			Help:      h("1 when the border overlay is enabled, 0 otherwise."),
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      h("HTTP requests by route pattern and status code."),
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SessionsActive,
		m.SessionsCreated,
		m.SessionsEvicted,
		m.LoopRunning,
		m.FramesDrawn,
		m.FrameDrawErrors,
		m.FrameBuildDuration,
		m.ScrollEvents,
		m.Swipes,
		m.BorderRequests,
		m.BorderCache,
		m.BorderFetchDuration,
		m.BordersEnabled,
		m.HTTPRequests,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can create as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}
