package product

// Product represents a catalog item and maps to the `product` table.
// Prices are in rupees. A product loaded into a cart line is treated as an
// immutable snapshot; catalog edits do not rewrite existing lines.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
	InStock   bool    `json:"inStock"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// AllowedCategories contains the storefront's product categories.
var AllowedCategories = []string{
	"plants",
	"seeds",
	"tools",
	"gifting",
}

// ValidCategory reports whether name is one of the storefront categories.
func ValidCategory(name string) bool {
	for _, c := range AllowedCategories {
		if c == name {
			return true
		}
	}
	return false
}
