// Package storage persists session ledgers into an embedded key-value
// store: one entry per ledger, each a serialized JSON array, mirroring
// the ledger after every mutation and rehydrating it at session start.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.SnapshotLoader = (*SnapshotStore)(nil)
var _ port.CartListener = (*SnapshotStore)(nil)
var _ port.WishlistListener = (*SnapshotStore)(nil)

var (
	cartKey     = []byte("cart")
	wishlistKey = []byte("wishlist")
)

type SnapshotStore struct {
	db *leveldb.DB
}

func NewSnapshotStore(path string) (SnapshotStore, error) {
	const op = "NewSnapshotStore"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return SnapshotStore{}, fmt.Errorf("%s: failed to open store: %w", op, err)
	}
	return SnapshotStore{db}, nil
}

func (s SnapshotStore) Close() {
	const op = "SnapshotStore.Close"
	log := slog.With("op", op)

	log.Info("closing snapshot store...")
	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("snapshot store is closed")
}

// LoadCart returns the persisted cart lines. A missing entry yields an
// empty cart; a malformed entry is erased and also yields an empty
// cart, never an error.
func (s SnapshotStore) LoadCart() ([]domain.CartLine, error) {
	const op = "SnapshotStore.LoadCart"

	var rs []cartLineRecord
	ok, err := s.load(op, cartKey, &rs)
	if err != nil || !ok {
		return nil, err
	}

	lines := make([]domain.CartLine, len(rs))
	for i, r := range rs {
		lines[i] = r.toDomain()
	}
	return lines, nil
}

func (s SnapshotStore) LoadWishlist() ([]domain.Product, error) {
	const op = "SnapshotStore.LoadWishlist"

	var rs []productRecord
	ok, err := s.load(op, wishlistKey, &rs)
	if err != nil || !ok {
		return nil, err
	}

	ps := make([]domain.Product, len(rs))
	for i, r := range rs {
		ps[i] = r.toDomain()
	}
	return ps, nil
}

func (s SnapshotStore) SaveCart(lines []domain.CartLine) error {
	const op = "SnapshotStore.SaveCart"

	rs := make([]cartLineRecord, len(lines))
	for i, l := range lines {
		rs[i] = toCartLineRecord(l)
	}
	return s.save(op, cartKey, rs)
}

func (s SnapshotStore) SaveWishlist(ps []domain.Product) error {
	const op = "SnapshotStore.SaveWishlist"

	rs := make([]productRecord, len(ps))
	for i, p := range ps {
		rs[i] = toProductRecord(p)
	}
	return s.save(op, wishlistKey, rs)
}

// CartChanged persists the cart snapshot carried by the event. A write
// failure is non-fatal: the in-memory ledger stays authoritative.
func (s SnapshotStore) CartChanged(_ context.Context, evt domain.CartEvent) {
	if err := s.SaveCart(evt.Lines); err != nil {
		slog.Warn("failed to persist cart snapshot", "err", err)
	}
}

func (s SnapshotStore) WishlistChanged(_ context.Context, evt domain.WishlistEvent) {
	if err := s.SaveWishlist(evt.Products); err != nil {
		slog.Warn("failed to persist wishlist snapshot", "err", err)
	}
}

// load reports whether the entry existed and parsed. A parse failure
// deletes the entry and reports absence.
func (s SnapshotStore) load(op string, key []byte, v any) (bool, error) {
	b, err := s.db.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		slog.Warn("malformed snapshot entry, erasing",
			"op", op, "key", string(key), "err", err)
		if err := s.db.Delete(key, nil); err != nil {
			slog.Error("failed to erase malformed entry",
				"op", op, "key", string(key), "err", err)
		}
		return false, nil
	}
	return true, nil
}

func (s SnapshotStore) save(op string, key []byte, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Put(key, b, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
