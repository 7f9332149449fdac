package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fenny-Huy/AWE-Store/internal/checkout"
	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type selectMethodRequest struct {
	Method domain.PaymentMethod `json:"method"`
}

type checkoutView struct {
	State   domain.FlowState      `json:"state"`
	Method  domain.PaymentMethod  `json:"method,omitempty"`
	OrderID string                `json:"orderId,omitempty"`
	Message string                `json:"message,omitempty"`
	Result  *domain.PaymentResult `json:"result,omitempty"`
}

func (s *Server) checkoutView() checkoutView {
	return checkoutView{
		State:   s.checkout.State(),
		Method:  s.checkout.Method(),
		OrderID: s.checkout.OrderID(),
		Message: s.checkout.FailureMessage(),
		Result:  s.checkout.Result(),
	}
}

func (s *Server) GetCheckout(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, s.checkoutView())
}

func (s *Server) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req selectMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := s.checkout.SelectMethod(req.Method); err != nil {
		s.respondFlowError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.checkoutView())
}

// EnterPaymentDetails decodes the body as the variant of the currently
// selected method, so a stray field from another method cannot sneak in.
func (s *Server) EnterPaymentDetails(w http.ResponseWriter, r *http.Request) {
	details, err := decodeDetails(s.checkout.Method(), r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_details", err.Error())
		return
	}

	if err := s.checkout.EnterDetails(details); err != nil {
		s.respondFlowError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.checkoutView())
}

func (s *Server) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	result, err := s.checkout.Submit(r.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrIllegalTransition) {
			s.respondFlowError(w, err)
			return
		}
		// The flow is now Failed; report the outcome rather than a bare
		// error so the operator sees the retryable state.
		view := s.checkoutView()
		view.Result = result
		s.respondJSON(w, http.StatusUnprocessableEntity, view)
		return
	}
	s.respondJSON(w, http.StatusOK, s.checkoutView())
}

func (s *Server) ResetCheckout(w http.ResponseWriter, _ *http.Request) {
	s.checkout.Reset()
	s.respondJSON(w, http.StatusOK, s.checkoutView())
}

func (s *Server) respondFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrIllegalTransition):
		s.respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, checkout.ErrUnknownMethod), errors.Is(err, checkout.ErrMethodMismatch):
		s.respondError(w, http.StatusBadRequest, "invalid_method", err.Error())
	default:
		s.respondComponentError(w, err)
	}
}

func decodeDetails(method domain.PaymentMethod, r *http.Request) (domain.PaymentDetails, error) {
	switch method {
	case domain.PaymentMethodCredit:
		var d domain.CreditCardDetails
		return d, json.NewDecoder(r.Body).Decode(&d)
	case domain.PaymentMethodBank:
		var d domain.BankTransferDetails
		return d, json.NewDecoder(r.Body).Decode(&d)
	case domain.PaymentMethodThirdParty:
		var d domain.ThirdPartyDetails
		return d, json.NewDecoder(r.Body).Decode(&d)
	}
	return nil, checkout.ErrUnknownMethod
}
