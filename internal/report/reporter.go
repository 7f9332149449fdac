package report

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// UnknownProductName is rendered for sold product ids the product list does
// not know about; rows are never dropped.
const UnknownProductName = "(unknown)"

type SalesReader interface {
	SalesSummary(ctx context.Context) (*domain.SalesSummary, error)
}

type ProductLister interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

type Row struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type Report struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
	Rows         []Row   `json:"rows"`
}

// Reporter reconciles two independent reads: the sales summary is required,
// product names are best-effort enrichment.
type Reporter struct {
	sales    SalesReader
	products ProductLister
	log      *logrus.Logger
}

func NewReporter(sales SalesReader, products ProductLister, log *logrus.Logger) *Reporter {
	return &Reporter{
		sales:    sales,
		products: products,
		log:      log,
	}
}

// Build fetches summary and product list concurrently and left-joins product
// ids to names, ranked by descending quantity sold. A failed product fetch
// degrades to id-only rows; a failed summary fetch fails the whole report.
func (r *Reporter) Build(ctx context.Context) (*Report, error) {
	var (
		summary *domain.SalesSummary
		names   = make(map[string]string)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := r.sales.SalesSummary(gctx)
		if err != nil {
			return errors.Wrap(err, "sales summary")
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		products, err := r.products.Products(gctx)
		if err != nil {
			// Names are enrichment only; the table still renders from ids.
			r.log.WithError(err).Warn("product list unavailable, sales rows rendered without names")
			return nil
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(summary.ProductSales))
	for productID, quantity := range summary.ProductSales {
		name, ok := names[productID]
		if !ok {
			name = UnknownProductName
		}
		rows = append(rows, Row{ProductID: productID, Name: name, Quantity: quantity})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	return &Report{
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue,
		Rows:         rows,
	}, nil
}
