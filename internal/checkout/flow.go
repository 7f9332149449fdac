package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

var (
	ErrIllegalTransition = errors.New("illegal checkout flow transition")
	ErrEmptyCart         = errors.New("cart is empty, nothing to check out")
	ErrMethodMismatch    = errors.New("payment details do not match the selected method")
	ErrUnknownMethod     = errors.New("unknown payment method")
)

// CartSource supplies the authoritative cart total. The flow re-fetches the
// cart immediately before building the checkout request, so a cart changed
// mid-flow can never be billed at a stale total.
type CartSource interface {
	Refresh(ctx context.Context) (*domain.CartSnapshot, error)
}

type PaymentGateway interface {
	SubmitPayment(ctx context.Context, req domain.CheckoutRequest) (*domain.PaymentResult, error)
}

// CustomerSource supplies the active customer at submission time; the
// session manager implements it.
type CustomerSource interface {
	CustomerID() string
}

// Flow drives one checkout: method selection, method-specific input
// collection, submission, and a terminal success or retryable failure. One
// instance serves the session; a customer switch resets it to a fresh flow.
type Flow struct {
	customers CustomerSource
	cart      CartSource
	payments  PaymentGateway
	log       *logrus.Logger

	m       sync.Mutex
	state   domain.FlowState
	details domain.PaymentDetails
	result  *domain.PaymentResult
	failure string
	orderID string
}

func NewFlow(customers CustomerSource, cart CartSource, payments PaymentGateway, log *logrus.Logger) *Flow {
	return &Flow{
		customers: customers,
		cart:      cart,
		payments:  payments,
		log:       log,
		state:     domain.FlowStateIdle,
	}
}

// SelectMethod renders a fresh, empty field set for the chosen variant. Any
// previously entered details are dropped so no fields leak between variants.
// Legal from Idle, MethodSelected, DetailsEntered and Failed (retry).
func (f *Flow) SelectMethod(method domain.PaymentMethod) error {
	blank, err := blankDetails(method)
	if err != nil {
		return err
	}

	f.m.Lock()
	defer f.m.Unlock()
	if !domain.CanTransitionTo(f.state, domain.FlowStateMethodSelected) {
		return ErrIllegalTransition
	}
	f.state = domain.FlowStateMethodSelected
	f.details = blank
	f.failure = ""
	return nil
}

// EnterDetails snapshots the operator's field values. The variant must match
// the selected method.
func (f *Flow) EnterDetails(details domain.PaymentDetails) error {
	f.m.Lock()
	defer f.m.Unlock()
	if !domain.CanTransitionTo(f.state, domain.FlowStateDetailsEntered) {
		return ErrIllegalTransition
	}
	if f.details == nil || details.Method() != f.details.Method() {
		return ErrMethodMismatch
	}
	f.state = domain.FlowStateDetailsEntered
	f.details = details
	return nil
}

// Submit builds one CheckoutRequest and posts it. The total comes from an
// explicit cart re-fetch performed here, never from an earlier snapshot. A
// fresh order id is generated on every attempt, retries included. Any error,
// network or application, lands the flow in Failed with the message kept for
// the operator.
func (f *Flow) Submit(ctx context.Context) (*domain.PaymentResult, error) {
	f.m.Lock()
	if !domain.CanTransitionTo(f.state, domain.FlowStateSubmitting) {
		f.m.Unlock()
		return nil, ErrIllegalTransition
	}
	f.state = domain.FlowStateSubmitting
	customerID := f.customers.CustomerID()
	details := f.details
	orderID := newOrderID(customerID)
	f.orderID = orderID
	f.m.Unlock()

	snapshot, err := f.cart.Refresh(ctx)
	if err != nil {
		return nil, f.fail(fmt.Errorf("refresh cart before submit: %w", err))
	}
	if snapshot.IsEmpty() {
		return nil, f.fail(ErrEmptyCart)
	}

	req := domain.CheckoutRequest{
		CustomerID:     customerID,
		OrderID:        orderID,
		PaymentMethod:  details.Method(),
		PaymentDetails: details,
		TotalCost:      snapshot.Total(),
	}

	f.log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"order_id":    orderID,
		"method":      details.Method(),
	}).Info("submitting checkout")

	result, err := f.payments.SubmitPayment(ctx, req)
	if err != nil {
		return result, f.fail(err)
	}

	f.m.Lock()
	f.state = domain.FlowStateSucceeded
	f.result = result
	f.m.Unlock()
	return result, nil
}

// Reset abandons the current flow instance and starts a fresh one for the
// same customer, e.g. after navigating away from a completed checkout.
func (f *Flow) Reset() {
	f.m.Lock()
	defer f.m.Unlock()
	f.state = domain.FlowStateIdle
	f.details = nil
	f.result = nil
	f.failure = ""
	f.orderID = ""
}

func (f *Flow) State() domain.FlowState {
	f.m.Lock()
	defer f.m.Unlock()
	return f.state
}

// Method returns the currently selected payment method, or "" before any
// selection.
func (f *Flow) Method() domain.PaymentMethod {
	f.m.Lock()
	defer f.m.Unlock()
	if f.details == nil {
		return ""
	}
	return f.details.Method()
}

func (f *Flow) Result() *domain.PaymentResult {
	f.m.Lock()
	defer f.m.Unlock()
	return f.result
}

// FailureMessage is the operator-facing message of the last failed attempt.
func (f *Flow) FailureMessage() string {
	f.m.Lock()
	defer f.m.Unlock()
	return f.failure
}

func (f *Flow) OrderID() string {
	f.m.Lock()
	defer f.m.Unlock()
	return f.orderID
}

func (f *Flow) fail(err error) error {
	f.m.Lock()
	f.state = domain.FlowStateFailed
	f.failure = err.Error()
	f.m.Unlock()

	f.log.WithError(err).Warn("checkout attempt failed")
	return err
}

// blankDetails is the Go rendition of rendering an empty form for a method.
func blankDetails(method domain.PaymentMethod) (domain.PaymentDetails, error) {
	switch method {
	case domain.PaymentMethodCredit:
		return domain.CreditCardDetails{}, nil
	case domain.PaymentMethodBank:
		return domain.BankTransferDetails{}, nil
	case domain.PaymentMethodThirdParty:
		return domain.ThirdPartyDetails{}, nil
	}
	return nil, ErrUnknownMethod
}

// newOrderID combines the customer id with a random component; unique enough
// for display and audit, nothing stronger.
func newOrderID(customerID string) string {
	return customerID + "-" + uuid.NewString()
}
