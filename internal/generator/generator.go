package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// HighValueThreshold marks an order as high value for fraud scoring when its
// total strictly exceeds it.
const HighValueThreshold = 500.0

// orderStatusWeights gives the relative likelihood of COMPLETED, PENDING and
// CANCELLED orders.
var (
	orderStatuses      = []string{"COMPLETED", "PENDING", "CANCELLED"}
	orderStatusWeights = []int{80, 15, 5}
)

// deviceChangeWeights makes roughly 15% of orders carry a device change.
var deviceChangeWeights = []int{85, 15}

// Generator produces a self-consistent synthetic e-commerce dataset from an
// explicit seeded random source. It holds no global state: the same seed and
// anchor time always yield the same dataset.
type Generator struct {
	cfg  Config
	rand *rand.Rand
	now  time.Time
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.Customers <= 0 {
		cfg.Customers = def.Customers
	}
	if cfg.Orders <= 0 {
		cfg.Orders = def.Orders
	}
	if cfg.MinSignupAgeDays <= 0 {
		cfg.MinSignupAgeDays = def.MinSignupAgeDays
	}
	if cfg.MaxSignupAgeDays <= cfg.MinSignupAgeDays {
		cfg.MaxSignupAgeDays = def.MaxSignupAgeDays
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
		now:  now,
	}
}

// Generate synthesises the five entity sets in dependency order.
func (g *Generator) Generate() Dataset {
	customers := g.generateCustomers()
	products := g.generateProducts()
	orders, items := g.generateOrders(customers, products)
	signals := g.generateFraudSignals(orders)

	return Dataset{
		Customers:    customers,
		Products:     products,
		Orders:       orders,
		OrderItems:   items,
		FraudSignals: signals,
	}
}

func (g *Generator) generateCustomers() []Customer {
	customers := make([]Customer, g.cfg.Customers)
	for i := range customers {
		id := i + 1
		name := fmt.Sprintf("%s %s", g.pick(firstNames), g.pick(lastNames))
		ageDays := g.cfg.MinSignupAgeDays + g.rand.Intn(g.cfg.MaxSignupAgeDays-g.cfg.MinSignupAgeDays+1)

		customers[i] = Customer{
			ID:       id,
			FullName: name,
			// The id suffix keeps emails unique even when names collide.
			Email:       fmt.Sprintf("%s%d@example.com", strings.ToLower(strings.ReplaceAll(name, " ", "")), id),
			SignupDate:  g.now.AddDate(0, 0, -ageDays).Format("2006-01-02"),
			Country:     g.pick(countries),
			LoyaltyTier: g.pick(loyaltyTiers),
		}
	}
	return customers
}

func (g *Generator) generateProducts() []Product {
	products := make([]Product, len(catalog))
	for i, entry := range catalog {
		id := i + 1
		products[i] = Product{
			ID:       id,
			Name:     entry.Name,
			Category: entry.Category,
			Price:    round2(g.uniform(499, 99999) / 100),
			SKU:      fmt.Sprintf("SKU%d", 1000+id),
		}
	}
	return products
}

func (g *Generator) generateOrders(customers []Customer, products []Product) ([]Order, []OrderItem) {
	orders := make([]Order, 0, g.cfg.Orders)
	items := make([]OrderItem, 0, g.cfg.Orders*2)

	itemID := 1
	for orderID := 1; orderID <= g.cfg.Orders; orderID++ {
		customer := customers[g.rand.Intn(len(customers))]
		numItems := 1 + g.rand.Intn(4)

		// Totals sum unrounded line amounts and round once at the order
		// level, so they reconcile exactly with the stored unit prices.
		total := 0.0
		for i := 0; i < numItems; i++ {
			product := products[g.rand.Intn(len(products))]
			qty := 1 + g.rand.Intn(3)
			total += product.Price * float64(qty)

			items = append(items, OrderItem{
				ID:        itemID,
				OrderID:   orderID,
				ProductID: product.ID,
				Quantity:  qty,
				UnitPrice: product.Price,
			})
			itemID++
		}

		orders = append(orders, Order{
			ID:            orderID,
			CustomerID:    customer.ID,
			OrderDate:     g.now.AddDate(0, 0, -g.rand.Intn(366)).Format("2006-01-02 15:04:05"),
			Total:         round2(total),
			PaymentMethod: g.pick(paymentMethods),
			Status:        orderStatuses[g.weightedIndex(orderStatusWeights)],
		})
	}

	return orders, items
}

func (g *Generator) generateFraudSignals(orders []Order) []FraudSignal {
	signals := make([]FraudSignal, len(orders))
	for i, order := range orders {
		highValue := 0
		if order.Total > HighValueThreshold {
			highValue = 1
		}

		signals[i] = FraudSignal{
			OrderID:          order.ID,
			IPCountry:        g.pick(ipCountries),
			BillingCountry:   g.pick(billingCountries),
			DeviceChangeFlag: g.weightedIndex(deviceChangeWeights),
			HighValueFlag:    highValue,
			PaymentRiskScore: round2(g.rand.Float64()),
		}
	}
	return signals
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rand.Intn(len(pool))]
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

// weightedIndex draws an index with probability proportional to its weight.
func (g *Generator) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rand.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
