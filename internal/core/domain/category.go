package domain

// Category is an unattached taxonomy entry; no product linkage is modeled.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
