package web

import (
	"encoding/json"
	"net/http"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type sessionView struct {
	CustomerID  string             `json:"customerId"`
	CatalogueID string             `json:"catalogueId"`
	Customers   []string           `json:"customers"`
	Catalogues  []domain.Catalogue `json:"catalogues"`
}

type selectCustomerRequest struct {
	CustomerID string `json:"customerId"`
}

type selectCatalogueRequest struct {
	CatalogueID string `json:"catalogueId"`
}

func (s *Server) GetSession(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, sessionView{
		CustomerID:  s.session.CustomerID(),
		CatalogueID: s.session.CatalogueID(),
		Customers:   s.session.Customers(),
		Catalogues:  s.session.Catalogues(),
	})
}

// SelectCustomer switches the active customer. The session manager's
// subscribers run synchronously, so the cart refetch for the new customer is
// already done (or failed visibly) by the time this returns.
func (s *Server) SelectCustomer(w http.ResponseWriter, r *http.Request) {
	var req selectCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.CustomerID == "" {
		s.respondError(w, http.StatusBadRequest, "invalid_customer_id", "customerId is required")
		return
	}

	s.session.SelectCustomer(req.CustomerID)
	s.GetSession(w, r)
}

func (s *Server) SelectCatalogue(w http.ResponseWriter, r *http.Request) {
	var req selectCatalogueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	s.session.SelectCatalogue(req.CatalogueID)
	s.GetSession(w, r)
}
