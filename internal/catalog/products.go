package catalog

// Product is one product category card on the storefront.
type Product struct {
	ID          int
	Slug        string
	Name        string
	Category    string
	Description string
	Details     string
	Featured    bool
}

var products = []Product{
	{
		ID:          1,
		Slug:        "concentrates",
		Name:        "Premium Concentrates",
		Category:    "concentrates",
		Description: "Refined, potent extracts delivering bold flavors and an unmatched high for the true enthusiasts.",
		Details:     "Experience our curated selection of high-quality concentrates including crumble, diamonds, diamond sauce, kief, and live rosin. Each product is carefully selected to deliver premium potency and flavor profiles that elevate your experience to the next level.",
		Featured:    true,
	},
	{
		ID:          2,
		Slug:        "drinks",
		Name:        "THCa Infused Drinks",
		Category:    "drinks",
		Description: "Crisp, refreshing THCa infused seltzers that deliver a clean, balanced elevation with every sip.",
		Details:     "Our premium THCa infused beverage collection offers a sophisticated way to enjoy cannabis. Each refreshing sip delivers a perfectly balanced, clean elevation. Perfect for social occasions or personal relaxation.",
		Featured:    true,
	},
	{
		ID:          3,
		Slug:        "edibles",
		Name:        "Gourmet Edibles",
		Category:    "edibles",
		Description: "Gourmet-infused chocolates, gummies, caramel chews, cookies, and other treats that blend luxury taste with elevated effects.",
		Details:     "Indulge in our selection of premium edibles. From artisanal chocolates to gourmet gummies, caramel chews, and specialty cookies, each treat is crafted to deliver both exceptional flavor and consistent effects. Perfect for discerning cannabis connoisseurs.",
		Featured:    true,
	},
	{
		ID:          4,
		Slug:        "vapes",
		Name:        "Sleek Vape Devices",
		Category:    "vapes",
		Description: "Sleek, sophisticated, and discreet devices offering smooth pulls, premium oils, and effortless enjoyment.",
		Details:     "Browse our collection of premium vape devices featuring brands such as TribeToke and Wildwoods. Each device is selected for superior smooth pulls, premium oil compatibility, and discreet sophistication for the modern cannabis enthusiast.",
		Featured:    true,
	},
}

// Products returns every product category in display order.
func Products() []Product {
	return append([]Product(nil), products...)
}

// ProductBySlug looks a product up by its URL slug.
func ProductBySlug(slug string) (Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// ProductsByCategory filters products by category name.
func ProductsByCategory(category string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
