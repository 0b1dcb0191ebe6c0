package generator

// Reference pools for the synthetic dataset. The fraud country pools
// intentionally differ from the customer pool: the IP pool and the billing
// pool each carry two extra countries the other does not, so cross-border
// mismatches show up for downstream risk scoring.

var firstNames = []string{"Asha", "Rohan", "Mira", "Karan", "Zara", "Ishaan", "Lina", "Vivaan", "Neha", "Arjun", "Priya", "Sameer"}

var lastNames = []string{"Patel", "Sharma", "Iyer", "Gupta", "Khan", "Menon", "Reddy", "Das"}

var countries = []string{"India", "USA", "UK", "Germany", "Canada", "Australia"}

var billingCountries = []string{"India", "USA", "UK", "Germany", "Canada", "Australia", "Malta", "Singapore"}

var ipCountries = []string{"India", "USA", "UK", "Germany", "Canada", "Australia", "Russia", "Ukraine"}

var loyaltyTiers = []string{"Bronze", "Silver", "Gold"}

var paymentMethods = []string{"Card", "UPI", "NetBanking", "Wallet"}

type catalogEntry struct {
	Name     string
	Category string
}

// catalog maps one-to-one onto products, identifiers dense from 1.
var catalog = []catalogEntry{
	{"Smartphone X", "Electronics"},
	{"Laptop Pro", "Electronics"},
	{"Air Purifier", "Home"},
	{"Coffee Maker", "Home"},
	{"Running Shoes", "Fashion"},
	{"Yoga Mat", "Fitness"},
	{"Wireless Earbuds", "Electronics"},
	{"Blender", "Home"},
	{"Jacket", "Fashion"},
	{"Smartwatch", "Electronics"},
}
