package domain

// Product is a catalog item. InStock is an independent visibility flag: it is
// never recomputed from AmountInStock, and AmountInStock is never reserved or
// decremented by cart operations.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AmountInStock int     `json:"amount_in_stock"`
	Price         float64 `json:"price"`
	InStock       bool    `json:"in_stock"`
}
