package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	ProblemsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_problems_generated_total",
			Help: "Problems generated, by source and difficulty",
		},
		[]string{"source", "difficulty"},
	)

	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "math_submissions_total",
			Help: "Answer submissions, by correctness",
		},
		[]string{"correct"},
	)

	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Latency of text generation calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"operation", "status"},
	)

	SyllabusLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syllabus_content_loads_total",
			Help: "Syllabus content lookups, by where the text came from",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ProblemsGenerated)
		prometheus.MustRegister(SubmissionsTotal)
		prometheus.MustRegister(AIRequestDuration)
		prometheus.MustRegister(SyllabusLoads)
	})
}

// ObserveAI 记录一次 AI 调用耗时
func ObserveAI(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	AIRequestDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
