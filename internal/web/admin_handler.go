package web

import "net/http"

// GetSalesReport renders the joined sales table. The reporter already
// degrades to nameless rows when the product list is unavailable; only a
// missing summary fails the endpoint.
func (s *Server) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Build(r.Context())
	if err != nil {
		s.respondComponentError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rep)
}
