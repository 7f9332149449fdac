package domain

// Product is sourced fresh from the backend on every listing fetch and is
// immutable from the client's point of view.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

type Catalogue struct {
	ID   string `json:"catalogueId"`
	Name string `json:"name"`
}

// CatalogueAll is the sentinel catalogue id meaning "no catalogue filter".
const CatalogueAll = "ALL"
