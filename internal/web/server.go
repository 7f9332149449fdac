package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
	"github.com/Fenny-Huy/AWE-Store/internal/report"
)

// SessionManager is the slice of the session state manager the handlers use.
type SessionManager interface {
	CustomerID() string
	CatalogueID() string
	Customers() []string
	Catalogues() []domain.Catalogue
	SelectCustomer(customerID string)
	SelectCatalogue(catalogueID string)
}

// ProductLister serves the catalogue-scoped product listing.
type ProductLister interface {
	CatalogueProducts(ctx context.Context, catalogueID string) ([]domain.Product, error)
}

type CartService interface {
	Snapshot(ctx context.Context) (*domain.CartSnapshot, error)
	AddItem(ctx context.Context, productID string, quantity int) (*domain.CartSnapshot, error)
	RemoveItem(ctx context.Context, productID string) (*domain.CartSnapshot, error)
}

type CheckoutFlow interface {
	State() domain.FlowState
	Method() domain.PaymentMethod
	SelectMethod(method domain.PaymentMethod) error
	EnterDetails(details domain.PaymentDetails) error
	Submit(ctx context.Context) (*domain.PaymentResult, error)
	Reset()
	Result() *domain.PaymentResult
	FailureMessage() string
	OrderID() string
}

type ReportBuilder interface {
	Build(ctx context.Context) (*report.Report, error)
}

// Server is the operator-facing HTTP surface of the storefront. All commerce
// state lives in the components behind it; the handlers only translate.
type Server struct {
	session  SessionManager
	products ProductLister
	cart     CartService
	checkout CheckoutFlow
	reports  ReportBuilder
	log      *logrus.Logger
	timeout  time.Duration
}

func NewServer(
	session SessionManager,
	products ProductLister,
	cartSvc CartService,
	checkout CheckoutFlow,
	reports ReportBuilder,
	timeout time.Duration,
	log *logrus.Logger,
) *Server {
	return &Server{
		session:  session,
		products: products,
		cart:     cartSvc,
		checkout: checkout,
		reports:  reports,
		log:      log,
		timeout:  timeout,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/session", s.GetSession)
		r.Put("/session/customer", s.SelectCustomer)
		r.Put("/session/catalogue", s.SelectCatalogue)

		r.Get("/products", s.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.GetCart)
			r.Post("/items", s.AddCartItem)
			r.Delete("/items/{productID}", s.RemoveCartItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", s.GetCheckout)
			r.Post("/method", s.SelectPaymentMethod)
			r.Post("/details", s.EnterPaymentDetails)
			r.Post("/submit", s.SubmitCheckout)
			r.Post("/reset", s.ResetCheckout)
		})

		r.Get("/admin/sales", s.GetSalesReport)
	})

	return r
}
