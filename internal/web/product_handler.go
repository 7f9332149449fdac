package web

import "net/http"

// ListProducts serves the product listing scoped by the session's active
// catalogue. Products are fetched fresh on every call, never cached across
// customer or catalogue switches.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.CatalogueProducts(r.Context(), s.session.CatalogueID())
	if err != nil {
		s.respondComponentError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, products)
}
