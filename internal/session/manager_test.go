package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

type mockDirectory struct {
	customers     []string
	customersErr  error
	catalogues    []domain.Catalogue
	cataloguesErr error
}

func (m *mockDirectory) Customers(context.Context) ([]string, error) {
	return m.customers, m.customersErr
}

func (m *mockDirectory) Catalogues(context.Context) ([]domain.Catalogue, error) {
	return m.catalogues, m.cataloguesErr
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoad_SelectsFirstCustomer(t *testing.T) {
	dir := &mockDirectory{
		customers:  []string{"alice", "bob"},
		catalogues: []domain.Catalogue{{ID: "summer", Name: "Summer"}},
	}
	m := NewManager(dir, testLogger())

	m.Load(context.Background())

	assert.Equal(t, "alice", m.CustomerID())
	assert.Equal(t, domain.CatalogueAll, m.CatalogueID())
	assert.Equal(t, []string{"alice", "bob"}, m.Customers())
	require.Len(t, m.Catalogues(), 1)
}

func TestLoad_EmptyCustomerListFallsBackToGuest(t *testing.T) {
	dir := &mockDirectory{customers: []string{}}
	m := NewManager(dir, testLogger())

	m.Load(context.Background())

	assert.Equal(t, GuestCustomerID, m.CustomerID())
	assert.Equal(t, []string{GuestCustomerID}, m.Customers())
}

func TestLoad_CustomerFetchFailureFallsBackToGuest(t *testing.T) {
	dir := &mockDirectory{customersErr: errors.New("backend down")}
	m := NewManager(dir, testLogger())

	m.Load(context.Background())

	assert.Equal(t, GuestCustomerID, m.CustomerID())
}

func TestLoad_CatalogueFailureDefaultsToAll(t *testing.T) {
	dir := &mockDirectory{
		customers:     []string{"alice"},
		cataloguesErr: errors.New("backend down"),
	}
	m := NewManager(dir, testLogger())

	m.Load(context.Background())

	assert.Equal(t, domain.CatalogueAll, m.CatalogueID())
	assert.Empty(t, m.Catalogues())
}

func TestSelectCustomer_NotifiesSubscribersSynchronously(t *testing.T) {
	m := NewManager(&mockDirectory{}, testLogger())

	var seen []string
	m.OnCustomerChange(func(customerID string) { seen = append(seen, customerID) })
	m.OnCustomerChange(func(customerID string) { seen = append(seen, "second:"+customerID) })

	m.SelectCustomer("bob")

	assert.Equal(t, "bob", m.CustomerID())
	assert.Equal(t, []string{"bob", "second:bob"}, seen)
}

func TestSelectCustomer_IgnoresEmptyID(t *testing.T) {
	m := NewManager(&mockDirectory{}, testLogger())
	m.SelectCustomer("alice")

	var notified bool
	m.OnCustomerChange(func(string) { notified = true })

	m.SelectCustomer("")

	assert.Equal(t, "alice", m.CustomerID())
	assert.False(t, notified)
}

func TestSelectCatalogue_EmptyMeansAll(t *testing.T) {
	m := NewManager(&mockDirectory{}, testLogger())

	var seen []string
	m.OnCatalogueChange(func(catalogueID string) { seen = append(seen, catalogueID) })

	m.SelectCatalogue("summer")
	m.SelectCatalogue("")

	assert.Equal(t, domain.CatalogueAll, m.CatalogueID())
	assert.Equal(t, []string{"summer", domain.CatalogueAll}, seen)
}
