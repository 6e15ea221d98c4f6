package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry 应用自有指标
	Registry = prometheus.NewRegistry()

	careersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_mode",
			Subsystem: "careers",
			Name:      "created_total",
			Help:      "Total number of new-career transactions by outcome.",
		},
		[]string{"status"},
	)

	careerCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "career_mode",
			Subsystem: "careers",
			Name:      "create_duration_seconds",
			Help:      "Duration of the new-career transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_mode",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "career_mode",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		careersCreated,
		careerCreateDuration,
		httpRequests,
		httpDuration,
	)
}

// Handler 暴露 Prometheus 指标
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordCareerCreation 记录一次新生涯事务
func RecordCareerCreation(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	careersCreated.WithLabelValues(status).Inc()
	careerCreateDuration.Observe(duration.Seconds())
}

// GinMiddleware 统计请求数与耗时；path 使用路由模板避免标签爆炸
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
