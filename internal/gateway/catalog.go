package gateway

import (
	"context"
	"fmt"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// Customers returns the backend's known customer ids. An empty list is a
// valid response; the session layer decides what to do with it.
func (c *Client) Customers(ctx context.Context) ([]string, error) {
	var customers []string
	if err := c.getJSON(ctx, "list customers", "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) Catalogues(ctx context.Context) ([]domain.Catalogue, error) {
	var catalogues []domain.Catalogue
	if err := c.getJSON(ctx, "list catalogues", "/catalogues", &catalogues); err != nil {
		return nil, err
	}
	return catalogues, nil
}

// Products returns the unscoped product list.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "list products", "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CatalogueProducts returns the product list scoped to one catalogue. The
// CatalogueAll sentinel routes to the unscoped listing.
func (c *Client) CatalogueProducts(ctx context.Context, catalogueID string) ([]domain.Product, error) {
	if catalogueID == "" || catalogueID == domain.CatalogueAll {
		return c.Products(ctx)
	}

	var products []domain.Product
	path := fmt.Sprintf("/catalogues/%s/products", pathEscape(catalogueID))
	if err := c.getJSON(ctx, "list catalogue products", path, &products); err != nil {
		return nil, err
	}
	return products, nil
}
