package store

import (
	"errors"
	"sync"
	"time"

	"github.com/petsphere/petsphere-api/internal/models"
)

var (
	// ErrProductNotFound is returned when a cart or wishlist add references
	// a product id that does not exist. The row is never created.
	ErrProductNotFound = errors.New("store: referenced product does not exist")

	// ErrDanglingProduct is returned when a resolved read finds a row whose
	// product has vanished from the catalog. This means the store's own
	// invariants were broken by an earlier bug, so the read fails loudly
	// instead of dropping the row.
	ErrDanglingProduct = errors.New("store: row references a missing product")

	// ErrInvalidQuantity is returned when a cart mutation asks for a
	// quantity below one.
	ErrInvalidQuantity = errors.New("store: quantity must be at least 1")
)

// Store owns the authoritative in-memory state for every entity kind.
//
// Each kind lives in its own keyed collection with a per-kind id counter
// that starts at 1 and is never reused, even after deletes. One lock guards
// all collections so that compound mutations (the cart duplicate-check-then-
// merge, the wishlist dedupe) are atomic with respect to every other
// operation. Nothing is persisted; state lives for the lifetime of the
// process.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*models.User
	products     map[int64]*models.Product
	carts        map[int64]*models.CartItem
	orders       map[int64]*models.Order
	orderItems   map[int64]*models.OrderItem
	appointments map[int64]*models.Appointment
	wishlists    map[int64]*models.WishlistItem

	userID        int64
	productID     int64
	cartID        int64
	orderID       int64
	orderItemID   int64
	appointmentID int64
	wishlistID    int64

	now func() time.Time
}

// New returns an empty Store. Callers that want the demo catalog should
// follow up with SeedDemoCatalog.
func New() *Store {
	return &Store{
		users:        make(map[int64]*models.User),
		products:     make(map[int64]*models.Product),
		carts:        make(map[int64]*models.CartItem),
		orders:       make(map[int64]*models.Order),
		orderItems:   make(map[int64]*models.OrderItem),
		appointments: make(map[int64]*models.Appointment),
		wishlists:    make(map[int64]*models.WishlistItem),

		userID:        1,
		productID:     1,
		cartID:        1,
		orderID:       1,
		orderItemID:   1,
		appointmentID: 1,
		wishlistID:    1,

		now: time.Now,
	}
}
