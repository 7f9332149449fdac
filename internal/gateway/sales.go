package gateway

import (
	"context"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// SalesSummary fetches the admin sales rollup. Authentication of the admin
// context is the deployment's concern, not this client's.
func (c *Client) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	var summary domain.SalesSummary
	if err := c.getJSON(ctx, "fetch sales summary", "/admin/sales", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
