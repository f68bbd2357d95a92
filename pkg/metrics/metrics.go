package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa las series Prometheus del servicio.
// Se construye una vez en main y se inyecta donde se necesite.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SalesCreatedTotal      prometheus.Counter
	PurchasesCreatedTotal  prometheus.Counter
	OrdersCreatedTotal     prometheus.Counter
	InsufficientStockTotal prometheus.Counter
	PermissionDeniedTotal  prometheus.Counter
	PlanLimitExceededTotal prometheus.Counter
}

// New registra las métricas con el prefijo configurado.
func New(prefix string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total de requests HTTP",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duración de requests HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		SalesCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_sales_created_total",
			Help: "Ventas POS confirmadas",
		}),
		PurchasesCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_purchases_created_total",
			Help: "Compras a proveedor registradas",
		}),
		OrdersCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_orders_created_total",
			Help: "Pedidos e-commerce creados",
		}),
		InsufficientStockTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_insufficient_stock_total",
			Help: "Transacciones rechazadas por stock insuficiente",
		}),
		PermissionDeniedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_permission_denied_total",
			Help: "Requests rechazados por rol insuficiente",
		}),
		PlanLimitExceededTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_plan_limit_exceeded_total",
			Help: "Operaciones rechazadas por límite del plan",
		}),
	}
}
