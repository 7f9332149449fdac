package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartView struct {
	CustomerID string            `json:"customerId"`
	Lines      []domain.CartLine `json:"lines"`
	Total      float64           `json:"total"`
}

// newCartView derives the total from the lines at render time; the two can
// never disagree.
func newCartView(snapshot *domain.CartSnapshot) cartView {
	return cartView{
		CustomerID: snapshot.CustomerID,
		Lines:      snapshot.Lines,
		Total:      snapshot.Total(),
	}
}

func (s *Server) GetCart(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.cart.Snapshot(r.Context())
	if err != nil {
		s.respondComponentError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newCartView(snapshot))
}

func (s *Server) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		s.respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		s.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	snapshot, err := s.cart.AddItem(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		s.respondComponentError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, newCartView(snapshot))
}

func (s *Server) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		s.respondError(w, http.StatusBadRequest, "invalid_product_id", "productID is required")
		return
	}

	snapshot, err := s.cart.RemoveItem(r.Context(), productID)
	if err != nil {
		s.respondComponentError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newCartView(snapshot))
}
