package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveCustomer means no customer has been selected yet; cart
	// operations have no owner to act on.
	ErrNoActiveCustomer = errors.New("no active customer selected")

	// ErrStaleResponse marks a cart fetch that resolved after a newer fetch
	// or a customer switch; its payload was discarded, not applied.
	ErrStaleResponse = errors.New("stale cart response discarded")
)

// FetchError wraps a failed cart read. The cached snapshot is not touched;
// the UI must show an explicit error state instead of silently reusing it.
type FetchError struct {
	CustomerID string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch cart for %s: %v", e.CustomerID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AddItemError wraps a failed add mutation; the cart is left at its last
// known snapshot.
type AddItemError struct {
	ProductID string
	Err       error
}

func (e *AddItemError) Error() string {
	return fmt.Sprintf("add product %s to cart: %v", e.ProductID, e.Err)
}

func (e *AddItemError) Unwrap() error { return e.Err }

type RemoveItemError struct {
	ProductID string
	Err       error
}

func (e *RemoveItemError) Error() string {
	return fmt.Sprintf("remove product %s from cart: %v", e.ProductID, e.Err)
}

func (e *RemoveItemError) Unwrap() error { return e.Err }
