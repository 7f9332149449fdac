package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart returns the authoritative cart lines for one customer.
func (c *Client) Cart(ctx context.Context, customerID string) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	path := fmt.Sprintf("/cart/%s", pathEscape(customerID))
	if err := c.getJSON(ctx, "fetch cart", path, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddCartItem issues the mutation only; callers re-fetch the cart afterwards
// rather than trusting any body the backend may return.
func (c *Client) AddCartItem(ctx context.Context, customerID, productID string, quantity int) error {
	path := fmt.Sprintf("/cart/%s/add", pathEscape(customerID))
	payload := addCartItemRequest{ProductID: productID, Quantity: quantity}
	_, err := c.do(ctx, "add cart item", http.MethodPost, path, payload)
	return err
}

func (c *Client) RemoveCartItem(ctx context.Context, customerID, productID string) error {
	path := fmt.Sprintf("/cart/%s/%s", pathEscape(customerID), pathEscape(productID))
	_, err := c.do(ctx, "remove cart item", http.MethodDelete, path, nil)
	return err
}
