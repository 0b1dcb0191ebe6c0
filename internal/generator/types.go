package generator

// Dataset holds one full generation run. All slices are referentially
// consistent: every order points at a generated customer, every item at a
// generated order and product, and every fraud signal at a generated order.
type Dataset struct {
	Customers    []Customer
	Products     []Product
	Orders       []Order
	OrderItems   []OrderItem
	FraudSignals []FraudSignal
}

type Customer struct {
	ID          int
	FullName    string
	Email       string
	SignupDate  string
	Country     string
	LoyaltyTier string
}

type Product struct {
	ID       int
	Name     string
	Category string
	Price    float64
	SKU      string
}

type Order struct {
	ID            int
	CustomerID    int
	OrderDate     string
	Total         float64
	PaymentMethod string
	Status        string
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice float64
}

type FraudSignal struct {
	OrderID          int
	IPCountry        string
	BillingCountry   string
	DeviceChangeFlag int
	HighValueFlag    int
	PaymentRiskScore float64
}
