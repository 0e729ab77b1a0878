// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found", or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignUpsTotal counts sign-up attempts.
// Label:
//   - result: "success", "exists", "invalid", or "error"
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by the role authorizer.
// Label:
//   - reason: "unauthenticated" (no identity in context) or "forbidden"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by role authorization.",
	},
	[]string{"reason"},
)

// ── Commerce metrics ──────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added to the catalog.
// Label:
//   - category: the product category supplied by the admin
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ShopsCreatedTotal counts shops registered.
var ShopsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shops_created_total",
		Help:      "Total number of shops registered.",
	},
)

// OrdersCreatedTotal counts order placements.
// Label:
//   - result: "created" or "replayed" (idempotency-key hit)
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of order placements, labelled by outcome.",
	},
	[]string{"result"},
)
