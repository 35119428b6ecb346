package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/cart"
	"ecom-store/internal/domain/discount"
	"ecom-store/internal/domain/order"
	"ecom-store/internal/pkg/clock"
	"ecom-store/internal/pkg/config"
	"ecom-store/internal/pkg/errs"
)

// Store owns all mutable state: open carts, the append-only order log,
// the discount codes, and the order counter. Every public operation
// takes the mutex for its whole validate-then-commit span, so two
// concurrent checkouts can never claim the same discount code or
// interleave order-id allocation.
//
// Each successful mutation writes a full snapshot to disk. A failed
// save is logged and swallowed; the in-memory state stays the source
// of truth for the process lifetime.
type Store struct {
	mu     sync.Mutex
	logger *slog.Logger
	clock  clock.Clock

	dataFile string
	interval int // every nth order mints a discount code

	carts      map[string]*cart.Cart
	orders     []order.Order
	codes      []discount.Code
	orderCount int
}

// DefaultDiscountInterval is used when the configured interval is not
// at least 1.
const DefaultDiscountInterval = 5

func New(cfg config.StoreConfig, clk clock.Clock, logger *slog.Logger) *Store {
	s := &Store{
		logger:   logger,
		clock:    clk,
		dataFile: cfg.DataFile,
		interval: cfg.DiscountInterval,
		carts:    make(map[string]*cart.Cart),
	}
	if s.interval < 1 {
		s.interval = DefaultDiscountInterval
	}
	s.load()
	return s
}

// GetOrCreateCart registers an empty cart for the user if none exists
// and returns it.
func (s *Store) GetOrCreateCart(userID string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshotCart(s.ensureCart(userID))
}

// AddItem appends a line to the user's cart, or merges the quantity
// into an existing line with the same item id. The cart is created
// lazily on first add.
func (s *Store) AddItem(userID, itemID, name string, price decimal.Decimal, quantity int) (cart.Cart, error) {
	if price.Sign() <= 0 {
		return cart.Cart{}, errs.Mark(errs.New("price must be positive"), errs.ErrInvalidInput)
	}
	if quantity <= 0 {
		return cart.Cart{}, errs.Mark(errs.New("quantity must be positive"), errs.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensureCart(userID)
	c.AddLine(cart.Line{ItemID: itemID, Name: name, Price: price, Quantity: quantity})
	s.persist()
	return snapshotCart(c), nil
}

// RemoveItem drops the line with the given item id from the user's
// cart. Removal is idempotent: a missing cart or item id still
// succeeds and returns the (unchanged) cart.
func (s *Store) RemoveItem(userID, itemID string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return cart.Cart{UserID: userID, Items: []cart.Line{}}
	}
	c.RemoveLine(itemID)
	s.persist()
	return snapshotCart(c)
}

// GetCart returns the user's cart, or a consistent empty-cart shape if
// none exists. Read-only.
func (s *Store) GetCart(userID string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return cart.Cart{UserID: userID, Items: []cart.Line{}}
	}
	return snapshotCart(c)
}

// ClearCart deletes the cart entry entirely. No-op if absent.
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID]; !ok {
		return
	}
	delete(s.carts, userID)
	s.persist()
}

// Checkout turns the user's cart into an immutable order. The optional
// discount code must exist and be unused; it is consumed atomically
// with order creation. Every discount_interval-th order mints a new
// code. The cart entry is removed on success.
//
// Validation happens before any state is touched, so a failed checkout
// leaves the cart and every code exactly as they were.
func (s *Store) Checkout(userID string, discountCode *string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok || c.IsEmpty() {
		return order.Order{}, errs.ErrEmptyCart
	}

	subtotal := c.Subtotal()
	discountAmount := decimal.Zero

	codeIdx := -1
	if discountCode != nil && *discountCode != "" {
		codeIdx = s.findUsableCode(*discountCode)
		if codeIdx < 0 {
			return order.Order{}, errs.ErrInvalidDiscountCode
		}
		discountAmount = discount.Amount(subtotal)
	}

	// Validation is done; everything below commits.
	now := s.clock.Now()

	var applied *string
	if codeIdx >= 0 {
		s.codes[codeIdx].MarkUsed(now)
		code := s.codes[codeIdx].Code
		applied = &code
	}

	items := make([]cart.Line, len(c.Items))
	copy(items, c.Items)

	o := order.Order{
		OrderID:        order.FormatID(len(s.orders) + 1),
		UserID:         userID,
		Items:          items,
		Subtotal:       subtotal,
		DiscountCode:   applied,
		DiscountAmount: discountAmount,
		Total:          subtotal.Sub(discountAmount),
		CreatedAt:      now,
	}

	s.orders = append(s.orders, o)
	s.orderCount++

	// Minting happens strictly after the order is counted, so the
	// crash window between the two can only lose the new code, never
	// double-issue it.
	if s.orderCount%s.interval == 0 {
		s.mintCode(now)
	}

	delete(s.carts, userID)
	s.persist()
	return o, nil
}

// GenerateDiscountCode manually mints a new code outside the automatic
// every-nth-order trigger, using the same numbering sequence.
func (s *Store) GenerateDiscountCode() discount.Code {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.mintCode(s.clock.Now())
	s.persist()
	return code
}

// ValidateDiscountCode reports whether the code exists and is still
// unused. Does not mutate.
func (s *Store) ValidateDiscountCode(code string) (discount.Code, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findUsableCode(code)
	if idx < 0 {
		return discount.Code{}, false
	}
	return s.codes[idx], true
}

// Statistics aggregates over all orders and codes. Recomputed on every
// call; nothing is cached, so it can never be stale.
type Statistics struct {
	TotalItemsPurchased int             `json:"total_items_purchased"`
	TotalPurchaseAmount decimal.Decimal `json:"total_purchase_amount"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
	DiscountCodes       []discount.Code `json:"discount_codes"`
	TotalOrders         int             `json:"total_orders"`
}

func (s *Store) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Statistics{
		TotalPurchaseAmount: decimal.Zero,
		TotalDiscountAmount: decimal.Zero,
		DiscountCodes:       make([]discount.Code, len(s.codes)),
		TotalOrders:         len(s.orders),
	}
	for _, o := range s.orders {
		for _, l := range o.Items {
			stats.TotalItemsPurchased += l.Quantity
		}
		stats.TotalPurchaseAmount = stats.TotalPurchaseAmount.Add(o.Total)
		stats.TotalDiscountAmount = stats.TotalDiscountAmount.Add(o.DiscountAmount)
	}
	copy(stats.DiscountCodes, s.codes)
	return stats
}

// DiscountInterval returns the configured nth-order trigger, which a
// loaded snapshot may have overridden.
func (s *Store) DiscountInterval() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Store) ensureCart(userID string) *cart.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = cart.New(userID)
		s.carts[userID] = c
	}
	return c
}

// findUsableCode does a linear scan for an exact, case-sensitive match
// that has not been used. The codes slice doubles as the numbering
// source, so it stays the single structure; an index map can be added
// here if the code count ever warrants it.
func (s *Store) findUsableCode(code string) int {
	for i := range s.codes {
		if s.codes[i].Code == code && !s.codes[i].Used {
			return i
		}
	}
	return -1
}

func (s *Store) mintCode(now time.Time) discount.Code {
	code := discount.New(len(s.codes)+1, now)
	s.codes = append(s.codes, code)
	return code
}

// snapshotCart copies the cart value handed back to callers, so nothing
// outside the lock can reach the live line slice. Decimal values share
// their backing big.Int, which is safe: decimal ops never mutate it.
func snapshotCart(c *cart.Cart) cart.Cart {
	items := make([]cart.Line, len(c.Items))
	copy(items, c.Items)
	return cart.Cart{UserID: c.UserID, Items: items}
}
