package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec // method, path, status
	HTTPDuration *prometheus.HistogramVec

	AssignmentsCreated     prometheus.Counter
	AssignmentsDeactivated prometheus.Counter
	FeeLinesCreated        prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transport_http_requests_total",
			Help: "Total HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transport_http_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"method", "path"}),
		AssignmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transport_assignments_created_total",
			Help: "Total student transport assignments created.",
		}),
		AssignmentsDeactivated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transport_assignments_deactivated_total",
			Help: "Total student transport assignments deactivated.",
		}),
		FeeLinesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transport_fee_lines_created_total",
			Help: "Total student fee assignment lines generated.",
		}),
	}

	reg.MustRegister(
		c.HTTPRequests, c.HTTPDuration,
		c.AssignmentsCreated, c.AssignmentsDeactivated, c.FeeLinesCreated,
	)
	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Middleware records per-request counters and latency. The route pattern is
// used as the path label so UUIDs don't explode cardinality.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		path := ctx.Route().Path
		if path == "" {
			path = ctx.Path()
		}
		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		c.HTTPRequests.WithLabelValues(ctx.Method(), path, strconv.Itoa(status)).Inc()
		c.HTTPDuration.WithLabelValues(ctx.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}
