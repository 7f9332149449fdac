package domain

import "time"

type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartSnapshot is the last successfully fetched cart state for one customer.
// It is only ever replaced wholesale from a fresh read, never patched in
// place, so the displayed total cannot drift from the authoritative lines.
type CartSnapshot struct {
	CustomerID string     `json:"customerId"`
	Lines      []CartLine `json:"lines"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}

// Total is always derived from the lines; it is never stored separately.
func (s *CartSnapshot) Total() float64 {
	var total float64
	for _, l := range s.Lines {
		total += l.Subtotal()
	}
	return total
}

func (s *CartSnapshot) IsEmpty() bool {
	return s == nil || len(s.Lines) == 0
}
