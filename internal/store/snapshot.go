package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/cart"
	"ecom-store/internal/domain/discount"
	"ecom-store/internal/domain/order"
	"ecom-store/internal/pkg/errs"
)

func init() {
	// Money fields are JSON numbers in the snapshot layout, not the
	// library's default quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// snapshotState is the on-disk layout. Field names are a compatibility
// surface for existing snapshot files and must not change.
type snapshotState struct {
	N             *int                  `json:"n"`
	OrderCount    *int                  `json:"order_count"`
	Carts         map[string]*cart.Cart `json:"carts"`
	Orders        []order.Order         `json:"orders"`
	DiscountCodes []discount.Code       `json:"discount_codes"`
}

// persist writes the full state to the snapshot file. Errors are logged
// and swallowed: a slow or failing disk degrades durability, never the
// in-memory mutation that already happened. Callers must hold s.mu.
func (s *Store) persist() {
	if err := s.writeSnapshot(); err != nil {
		s.logger.Error("failed to save store snapshot", "file", s.dataFile, "error", err)
	}
}

func (s *Store) writeSnapshot() error {
	st := snapshotState{
		N:             &s.interval,
		OrderCount:    &s.orderCount,
		Carts:         s.carts,
		Orders:        s.orders,
		DiscountCodes: s.codes,
	}
	if st.Orders == nil {
		st.Orders = []order.Order{}
	}
	if st.DiscountCodes == nil {
		st.DiscountCodes = []discount.Code{}
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errs.Wrap(err, "marshal snapshot")
	}

	if dir := filepath.Dir(s.dataFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(err, "create snapshot directory")
		}
	}

	// Write-to-temp-then-rename: a crash mid-write leaves the previous
	// snapshot intact under the canonical name.
	tmp := s.dataFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errs.Wrap(err, "write snapshot temp file")
	}
	if err := os.Rename(tmp, s.dataFile); err != nil {
		return errs.Wrap(err, "rename snapshot into place")
	}
	return nil
}

// load reads the snapshot file into the store. A missing file means a
// fresh start; an unparseable one is logged and discarded rather than
// refusing startup. Operators trade that data loss for a service that
// always comes up.
func (s *Store) load() {
	data, err := os.ReadFile(s.dataFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("could not read store snapshot, starting empty", "file", s.dataFile, "error", err)
		}
		return
	}

	var st snapshotState
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("could not parse store snapshot, starting empty", "file", s.dataFile, "error", err)
		return
	}

	if st.Carts != nil {
		s.carts = st.Carts
	}
	for userID, c := range s.carts {
		if c.Items == nil {
			c.Items = []cart.Line{}
		}
		if c.UserID == "" {
			c.UserID = userID
		}
	}
	s.orders = st.Orders
	s.codes = st.DiscountCodes
	if st.OrderCount != nil {
		s.orderCount = *st.OrderCount
	} else {
		s.orderCount = len(s.orders)
	}
	if st.N != nil && *st.N >= 1 {
		s.interval = *st.N
	}
}
