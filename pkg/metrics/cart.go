package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	AddResultInserted = "inserted"
	AddResultMerged   = "merged"
)

// CartMetrics counts cart activity. The zero value and nil receiver are no-ops.
type CartMetrics struct {
	itemsAdded      *prometheus.CounterVec
	itemsRemoved    prometheus.Counter
	stockRejections prometheus.Counter
	cartsCreated    prometheus.Counter
}

// NewCartMetrics registers the cart counters on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	itemsAdded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "items_added_total",
		Help:      "Add-to-cart operations by result (inserted or merged).",
	}, []string{"result"})
	itemsRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "items_removed_total",
		Help:      "Cart items removed.",
	})
	stockRejections := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "stock_rejections_total",
		Help:      "Add-to-cart requests rejected for insufficient stock.",
	})
	cartsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "carts_created_total",
		Help:      "Active carts created.",
	})
	reg.MustRegister(itemsAdded, itemsRemoved, stockRejections, cartsCreated)
	return &CartMetrics{
		itemsAdded:      itemsAdded,
		itemsRemoved:    itemsRemoved,
		stockRejections: stockRejections,
		cartsCreated:    cartsCreated,
	}
}

// IncItemAdded counts an add-to-cart by result.
func (c *CartMetrics) IncItemAdded(result string) {
	if c == nil || c.itemsAdded == nil {
		return
	}
	c.itemsAdded.WithLabelValues(normalizeLabel(result)).Inc()
}

func (c *CartMetrics) IncItemRemoved() {
	if c == nil || c.itemsRemoved == nil {
		return
	}
	c.itemsRemoved.Inc()
}

func (c *CartMetrics) IncStockRejection() {
	if c == nil || c.stockRejections == nil {
		return
	}
	c.stockRejections.Inc()
}

func (c *CartMetrics) IncCartCreated() {
	if c == nil || c.cartsCreated == nil {
		return
	}
	c.cartsCreated.Inc()
}
