package catalog

// Product is a catalog entry. Price is a decimal carried as a string so the
// JSON representation never goes through a float.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}
