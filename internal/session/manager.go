package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// GuestCustomerID is substituted when the backend reports no customers, so
// the session never becomes unselectable and checkout can proceed in a
// degraded mode.
const GuestCustomerID = "guest"

// Directory is the slice of the gateway the session manager reads from.
type Directory interface {
	Customers(ctx context.Context) ([]string, error)
	Catalogues(ctx context.Context) ([]domain.Catalogue, error)
}

// Manager owns the two pieces of client-resident selection state: which
// customer is active and which catalogue scopes the product listing.
// Dependents subscribe to changes instead of reading shared globals.
type Manager struct {
	m   sync.RWMutex
	dir Directory
	log *logrus.Logger

	customers   []string
	catalogues  []domain.Catalogue
	customerID  string
	catalogueID string

	onCustomerChange  []func(customerID string)
	onCatalogueChange []func(catalogueID string)
}

func NewManager(dir Directory, log *logrus.Logger) *Manager {
	return &Manager{
		dir:         dir,
		log:         log,
		catalogueID: domain.CatalogueAll,
	}
}

// OnCustomerChange registers a subscriber invoked synchronously after every
// customer selection, including the initial one made by Load.
func (m *Manager) OnCustomerChange(fn func(customerID string)) {
	m.m.Lock()
	defer m.m.Unlock()
	m.onCustomerChange = append(m.onCustomerChange, fn)
}

func (m *Manager) OnCatalogueChange(fn func(catalogueID string)) {
	m.m.Lock()
	defer m.m.Unlock()
	m.onCatalogueChange = append(m.onCatalogueChange, fn)
}

// Load performs the initial customer and catalogue fetches. It never fails:
// an empty or unreachable customer list degrades to the guest customer, and
// a catalogue failure degrades to the unfiltered listing.
func (m *Manager) Load(ctx context.Context) {
	customers, err := m.dir.Customers(ctx)
	if err != nil {
		m.log.WithError(err).Warn("customer list unavailable, falling back to guest")
		customers = nil
	}
	if len(customers) == 0 {
		customers = []string{GuestCustomerID}
	}

	catalogues, err := m.dir.Catalogues(ctx)
	if err != nil {
		m.log.WithError(err).Warn("catalogue list unavailable, defaulting to unfiltered listing")
		catalogues = nil
	}

	m.m.Lock()
	m.customers = customers
	m.catalogues = catalogues
	m.m.Unlock()

	m.SelectCustomer(customers[0])
	m.SelectCatalogue(domain.CatalogueAll)
}

// SelectCustomer is a synchronous state write; subscribers run before it
// returns so dependent refetches are already in flight when the UI re-reads.
func (m *Manager) SelectCustomer(customerID string) {
	if customerID == "" {
		return
	}

	m.m.Lock()
	m.customerID = customerID
	subscribers := make([]func(string), len(m.onCustomerChange))
	copy(subscribers, m.onCustomerChange)
	m.m.Unlock()

	m.log.WithField("customer_id", customerID).Info("active customer changed")
	for _, fn := range subscribers {
		fn(customerID)
	}
}

func (m *Manager) SelectCatalogue(catalogueID string) {
	if catalogueID == "" {
		catalogueID = domain.CatalogueAll
	}

	m.m.Lock()
	m.catalogueID = catalogueID
	subscribers := make([]func(string), len(m.onCatalogueChange))
	copy(subscribers, m.onCatalogueChange)
	m.m.Unlock()

	m.log.WithField("catalogue_id", catalogueID).Info("active catalogue changed")
	for _, fn := range subscribers {
		fn(catalogueID)
	}
}

func (m *Manager) CustomerID() string {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.customerID
}

func (m *Manager) CatalogueID() string {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.catalogueID
}

func (m *Manager) Customers() []string {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.customers
}

func (m *Manager) Catalogues() []domain.Catalogue {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.catalogues
}
