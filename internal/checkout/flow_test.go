package checkout

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type mockCartSource struct {
	snapshot *domain.CartSnapshot
	err      error
	calls    int
}

func (m *mockCartSource) Refresh(context.Context) (*domain.CartSnapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

type mockPaymentGateway struct {
	result   *domain.PaymentResult
	err      error
	requests []domain.CheckoutRequest
}

func (m *mockPaymentGateway) SubmitPayment(_ context.Context, req domain.CheckoutRequest) (*domain.PaymentResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type staticCustomer string

func (c staticCustomer) CustomerID() string { return string(c) }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func widgetCart() *domain.CartSnapshot {
	return &domain.CartSnapshot{
		CustomerID: "alice",
		Lines:      []domain.CartLine{{ProductID: "p1", Name: "Widget", Price: 9.99, Quantity: 3}},
		FetchedAt:  time.Now(),
	}
}

func setupFlow(t *testing.T) (*Flow, *mockCartSource, *mockPaymentGateway) {
	t.Helper()
	cartSrc := &mockCartSource{snapshot: widgetCart()}
	payments := &mockPaymentGateway{result: &domain.PaymentResult{Status: domain.PaymentStatusSuccess, Message: "paid"}}
	return NewFlow(staticCustomer("alice"), cartSrc, payments, testLogger()), cartSrc, payments
}

func TestSelectMethod_FromIdle(t *testing.T) {
	flow, _, _ := setupFlow(t)

	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))

	assert.Equal(t, domain.FlowStateMethodSelected, flow.State())
	assert.Equal(t, domain.PaymentMethodCredit, flow.Method())
}

func TestSelectMethod_UnknownMethodRejected(t *testing.T) {
	flow, _, _ := setupFlow(t)

	err := flow.SelectMethod("cheque")

	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Equal(t, domain.FlowStateIdle, flow.State())
}

func TestEnterDetails_MismatchedVariantRejected(t *testing.T) {
	flow, _, _ := setupFlow(t)
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))

	err := flow.EnterDetails(domain.BankTransferDetails{AccountNumber: "12345678", BSB: "062-000"})

	assert.ErrorIs(t, err, ErrMethodMismatch)
}

func TestSwitchingMethodClearsPreviousFields(t *testing.T) {
	flow, _, payments := setupFlow(t)
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))
	require.NoError(t, flow.EnterDetails(domain.CreditCardDetails{CardNumber: "4111111111111111", Expiry: "12/27", CVV: "123"}))

	// operator changes their mind before submitting
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodBank))
	require.NoError(t, flow.EnterDetails(domain.BankTransferDetails{AccountNumber: "12345678", BSB: "062-000"}))

	_, err := flow.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, payments.requests, 1)
	submitted := payments.requests[0]
	assert.Equal(t, domain.PaymentMethodBank, submitted.PaymentMethod)
	bank, ok := submitted.PaymentDetails.(domain.BankTransferDetails)
	require.True(t, ok, "submitted details must be the bank variant, got %T", submitted.PaymentDetails)
	assert.Equal(t, "12345678", bank.AccountNumber)
}

func TestSubmit_SucceedsOnlyOnSuccessStatus(t *testing.T) {
	flow, cartSrc, payments := setupFlow(t)
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))
	require.NoError(t, flow.EnterDetails(domain.CreditCardDetails{CardNumber: "4111111111111111", Expiry: "12/27", CVV: "123"}))

	result, err := flow.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, domain.FlowStateSucceeded, flow.State())
	assert.True(t, flow.State().IsTerminal())

	// total comes from the refetch performed at submit time
	assert.Equal(t, 1, cartSrc.calls)
	require.Len(t, payments.requests, 1)
	assert.InDelta(t, 29.97, payments.requests[0].TotalCost, 0.001)
	assert.Equal(t, "alice", payments.requests[0].CustomerID)
	assert.True(t, strings.HasPrefix(payments.requests[0].OrderID, "alice-"))
}

func TestSubmit_FromIdleIsIllegal(t *testing.T) {
	flow, _, _ := setupFlow(t)

	_, err := flow.Submit(context.Background())

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSubmit_GatewayFailureLandsInFailed(t *testing.T) {
	flow, _, payments := setupFlow(t)
	payments.err = errors.New("payment backend unreachable")
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))

	_, err := flow.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.FlowStateFailed, flow.State())
	assert.Contains(t, flow.FailureMessage(), "unreachable")
	assert.False(t, flow.State().IsTerminal())
}

func TestSubmit_EmptyCartFails(t *testing.T) {
	flow, cartSrc, _ := setupFlow(t)
	cartSrc.snapshot = &domain.CartSnapshot{CustomerID: "alice"}
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))

	_, err := flow.Submit(context.Background())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, domain.FlowStateFailed, flow.State())
}

func TestFailedFlowAllowsRetryWithFreshOrderID(t *testing.T) {
	flow, _, payments := setupFlow(t)
	payments.err = errors.New("declined")
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))

	_, err := flow.Submit(context.Background())
	require.Error(t, err)
	firstOrderID := flow.OrderID()

	// Failed -> MethodSelected: retry with the same method
	payments.err = nil
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))
	_, err = flow.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, payments.requests, 2)
	assert.NotEqual(t, firstOrderID, flow.OrderID())
	assert.NotEqual(t, payments.requests[0].OrderID, payments.requests[1].OrderID)
}

func TestSucceededFlowRejectsFurtherTransitions(t *testing.T) {
	flow, _, _ := setupFlow(t)
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodThirdParty))
	require.NoError(t, flow.EnterDetails(domain.ThirdPartyDetails{Provider: "paypal"}))

	_, err := flow.Submit(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, flow.SelectMethod(domain.PaymentMethodCredit), ErrIllegalTransition)
	_, err = flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestReset_StartsFreshFlowInstance(t *testing.T) {
	flow, _, _ := setupFlow(t)
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodCredit))
	_, err := flow.Submit(context.Background())
	require.NoError(t, err)

	flow.Reset()

	assert.Equal(t, domain.FlowStateIdle, flow.State())
	assert.Empty(t, flow.OrderID())
	assert.Nil(t, flow.Result())
	require.NoError(t, flow.SelectMethod(domain.PaymentMethodBank))
}
