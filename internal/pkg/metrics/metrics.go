package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"kafkaBridge/internal/domain"
)

const statusOK = "ok"

var (
	MessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_messages_published_total",
			Help: "Total number of location messages handed to the broker",
		},
		[]string{"topic", "status"},
	)

	MessagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_messages_consumed_total",
			Help: "Total number of messages delivered to the listener",
		},
		[]string{"topic", "status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_http_requests_total",
			Help: "Total number of HTTP requests by process role and route",
		},
		[]string{"role", "route", "method", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"role", "route"},
	)

	HTTPInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"role"},
	)
)

// ObserveHTTP учитывает завершённый запрос. route — шаблон маршрута, а не сырой путь.
func ObserveHTTP(role, route, method string, code int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(role, route, method, strconv.Itoa(code)).Inc()
	HTTPDuration.WithLabelValues(role, route).Observe(elapsed.Seconds())
}

// ObservePublish учитывает одну публикацию: status = "ok" или метка ошибки из domain.ErrorLabel.
func ObservePublish(topic string, err error) {
	MessagesPublished.WithLabelValues(topic, status(err)).Inc()
}

// ObserveConsume учитывает одно доставленное сообщение.
func ObserveConsume(topic string, err error) {
	MessagesConsumed.WithLabelValues(topic, status(err)).Inc()
}

func status(err error) string {
	if err == nil {
		return statusOK
	}
	return domain.ErrorLabel(err)
}
