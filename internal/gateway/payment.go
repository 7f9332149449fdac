package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// SubmitPayment posts one checkout request. A 2xx response whose body signals
// a failed status is normalized into an ApplicationError so callers can treat
// transport-level and application-level rejection identically.
func (c *Client) SubmitPayment(ctx context.Context, req domain.CheckoutRequest) (*domain.PaymentResult, error) {
	const op = "submit payment"

	raw, err := c.do(ctx, op, http.MethodPost, "/payment", req)
	if err != nil {
		return nil, err
	}

	var result domain.PaymentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &MalformedResponseError{Op: op, Err: err}
	}
	if !result.Succeeded() {
		return &result, &ApplicationError{Op: op, Message: result.Message}
	}
	return &result, nil
}
