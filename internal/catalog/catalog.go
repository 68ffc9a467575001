// Package catalog serves the storefront's product listings. The data is
// compiled in: the catalog is curated display data, not inventory, and the
// commerce engine treats it as an external collaborator feeding the cart.
package catalog

import (
	"sort"

	"github.com/electricpro/storefront/internal/models"
)

const (
	CategoryChandeliers     = "Chandeliers"
	CategoryLEDLights       = "LED Lights"
	CategorySwitches        = "Switches"
	CategoryCircuitBreakers = "Circuit Breakers"
	CategoryShowersHeaters  = "Showers & Heaters"
)

type Catalog struct {
	products []models.Product
	byID     map[string]int
}

func New() *Catalog {
	c := &Catalog{products: products, byID: make(map[string]int, len(products))}

	for i, p := range products {
		c.byID[p.ID] = i
	}

	return c
}

// List returns one page of products, optionally filtered by category, plus
// the total match count. Page numbers start at 1; out-of-range sizes are
// normalized the same way order listings were.
func (c *Catalog) List(category string, page, size int) ([]models.Product, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 12
	}

	matches := make([]models.Product, 0, len(c.products))

	for _, p := range c.products {
		if category == "" || p.Category == category {
			matches = append(matches, p)
		}
	}

	total := len(matches)

	start := (page - 1) * size
	if start >= total {
		return []models.Product{}, total
	}

	end := start + size
	if end > total {
		end = total
	}

	return matches[start:end], total
}

func (c *Catalog) Get(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}

	return c.products[i], true
}

func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, 8)

	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true

			categories = append(categories, p.Category)
		}
	}

	sort.Strings(categories)

	return categories
}

var products = []models.Product{
	{
		ID: "chd-1", Name: "Crystal Palace Chandelier",
		Description: "Luxurious crystal chandelier with LED lighting",
		Price:       "KSh 45,000", OriginalPrice: "KSh 55,000",
		Image: "/assets/hero-chandelier.jpg", Rating: 4.9, Reviews: 87,
		Badge: "Best Seller", Category: CategoryChandeliers,
	},
	{
		ID: "chd-2", Name: "Modern Brass Chandelier",
		Description: "Contemporary brass finish with warm lighting",
		Price:       "KSh 28,000",
		Image:       "/assets/hero-chandelier.jpg", Rating: 4.7, Reviews: 64,
		Category: CategoryChandeliers,
	},
	{
		ID: "chd-3", Name: "Vintage Edison Chandelier",
		Description: "Industrial style with exposed Edison bulbs",
		Price:       "KSh 18,500", OriginalPrice: "KSh 22,000",
		Image: "/assets/hero-chandelier.jpg", Rating: 4.6, Reviews: 92,
		Category: CategoryChandeliers,
	},
	{
		ID: "led-1", Name: "Smart LED Bulb Set",
		Description: "Energy-efficient smart bulbs with app control",
		Price:       "KSh 8,999",
		Image:       "/assets/led-bulbs.jpg", Rating: 4.8, Reviews: 89,
		Badge: "New", Category: CategoryLEDLights,
	},
	{
		ID: "led-2", Name: "RGB LED Strip Kit",
		Description: "Flexible lighting with color changing",
		Price:       "KSh 6,999",
		Image:       "/assets/led-strips.jpg", Rating: 4.6, Reviews: 156,
		Category: CategoryLEDLights,
	},
	{
		ID: "led-3", Name: "LED Panel Light",
		Description: "Ultra-thin ceiling panel with even light distribution",
		Price:       "KSh 4,500",
		Image:       "/assets/led-bulbs.jpg", Rating: 4.7, Reviews: 73,
		Category: CategoryLEDLights,
	},
	{
		ID: "led-4", Name: "LED Downlight Set",
		Description: "Recessed ceiling lights for modern interiors",
		Price:       "KSh 3,200",
		Image:       "/assets/led-bulbs.jpg", Rating: 4.5, Reviews: 41,
		Category: CategoryLEDLights,
	},
	{
		ID: "sw-1", Name: "Premium Wall Switch Collection",
		Description: "Modern design switches with LED indicators",
		Price:       "KSh 2,499",
		Image:       "/assets/wall-switches.jpg", Rating: 4.9, Reviews: 78,
		Badge: "Top Rated", Category: CategorySwitches,
	},
	{
		ID: "sw-2", Name: "Smart WiFi Switch",
		Description: "Voice control and app-enabled smart switch",
		Price:       "KSh 4,500",
		Image:       "/assets/wall-switches.jpg", Rating: 4.7, Reviews: 52,
		Category: CategorySwitches,
	},
	{
		ID: "sw-3", Name: "Dimmer Switch Set",
		Description: "Adjustable brightness control for LED lights",
		Price:       "KSh 3,200",
		Image:       "/assets/wall-switches.jpg", Rating: 4.6, Reviews: 37,
		Category: CategorySwitches,
	},
	{
		ID: "sw-4", Name: "Industrial Heavy Duty Switch",
		Description: "Robust switch for industrial applications",
		Price:       "KSh 1,800",
		Image:       "/assets/wall-switches.jpg", Rating: 4.8, Reviews: 66,
		Category: CategorySwitches,
	},
	{
		ID: "cb-1", Name: "Professional Circuit Breaker",
		Description: "Industrial grade safety protection",
		Price:       "KSh 14,999",
		Image:       "/assets/circuit-breakers.jpg", Rating: 4.7, Reviews: 203,
		Badge: "Best Seller", Category: CategoryCircuitBreakers,
	},
	{
		ID: "cb-2", Name: "MCB 3-Phase Breaker",
		Description: "Three-phase miniature circuit breaker",
		Price:       "KSh 8,500",
		Image:       "/assets/circuit-breakers.jpg", Rating: 4.8, Reviews: 119,
		Category: CategoryCircuitBreakers,
	},
	{
		ID: "cb-3", Name: "RCD Circuit Breaker",
		Description: "Residual current device with earth leakage protection",
		Price:       "KSh 12,000",
		Image:       "/assets/circuit-breakers.jpg", Rating: 4.9, Reviews: 94,
		Category: CategoryCircuitBreakers,
	},
	{
		ID: "cb-4", Name: "RCBO Combined Breaker",
		Description: "Combined RCD and MCB protection",
		Price:       "KSh 18,500",
		Image:       "/assets/circuit-breakers.jpg", Rating: 4.6, Reviews: 58,
		Category: CategoryCircuitBreakers,
	},
	{
		ID: "sh-1", Name: "Instant Electric Shower Heater",
		Description: "High-efficiency instant water heating system",
		Price:       "KSh 18,500",
		Image:       "/assets/shower-heater.jpg", Rating: 4.6, Reviews: 67,
		Category: CategoryShowersHeaters,
	},
	{
		ID: "sh-2", Name: "Tankless Water Heater",
		Description: "Space-saving tankless design with digital display",
		Price:       "KSh 25,500",
		Image:       "/assets/shower-heater.jpg", Rating: 4.8, Reviews: 45,
		Category: CategoryShowersHeaters,
	},
	{
		ID: "sh-3", Name: "Electric Storage Water Heater",
		Description: "50L capacity with temperature control",
		Price:       "KSh 15,000",
		Image:       "/assets/shower-heater.jpg", Rating: 4.5, Reviews: 38,
		Category: CategoryShowersHeaters,
	},
	{
		ID: "sh-4", Name: "Smart Shower System",
		Description: "App-controlled temperature and flow rate",
		Price:       "KSh 32,000",
		Image:       "/assets/shower-heater.jpg", Rating: 4.9, Reviews: 29,
		Badge: "New", Category: CategoryShowersHeaters,
	},
}
