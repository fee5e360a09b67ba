package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func newTestStore(t *testing.T) SnapshotStore {
	t.Helper()

	s, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:              1,
		Name:            "Premium Wireless Headphones",
		Price:           decimal.RequireFromString("199.99"),
		DiscountedPrice: decimal.RequireFromString("179.99"),
		Images:          []string{"https://example.com/a.jpg"},
		Category:        domain.CategoryElectronics,
		Rating:          4.8,
		Reviews:         128,
		InStock:         true,
		Featured:        true,
		Specs:           map[string]string{"Weight": "250g"},
	}
}

func TestSnapshotStore_CartRoundtrip(t *testing.T) {
	s := newTestStore(t)

	saved := []domain.CartLine{
		{Product: sampleProduct(), Quantity: 2},
	}
	require.NoError(t, s.SaveCart(saved))

	loaded, err := s.LoadCart()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, 2, loaded[0].Quantity)
	got := loaded[0].Product
	want := sampleProduct()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Category, got.Category)
	assert.True(t, got.Price.Equal(want.Price))
	assert.True(t, got.DiscountedPrice.Equal(want.DiscountedPrice))
	assert.Equal(t, want.Specs, got.Specs)
}

func TestSnapshotStore_WishlistRoundtrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveWishlist([]domain.Product{sampleProduct()}))

	loaded, err := s.LoadWishlist()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, sampleProduct().ID, loaded[0].ID)
	assert.True(t, loaded[0].EffectivePrice().Equal(decimal.RequireFromString("179.99")))
}

func TestSnapshotStore_MissingEntry(t *testing.T) {
	s := newTestStore(t)

	lines, err := s.LoadCart()
	require.NoError(t, err)
	assert.Empty(t, lines)

	ps, err := s.LoadWishlist()
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestSnapshotStore_MalformedEntryErased(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.db.Put(cartKey, []byte("not json"), nil))

	lines, err := s.LoadCart()
	require.NoError(t, err)
	assert.Empty(t, lines)

	// the bad entry must be gone
	_, err = s.db.Get(cartKey, nil)
	assert.ErrorIs(t, err, leveldb.ErrNotFound)
}

func TestSnapshotStore_ListenerPersistsEventState(t *testing.T) {
	ctx := t.Context()
	s := newTestStore(t)

	s.CartChanged(ctx, domain.CartEvent{
		Action: domain.ActionAdded,
		Lines:  []domain.CartLine{{Product: sampleProduct(), Quantity: 3}},
	})

	lines, err := s.LoadCart()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	s.WishlistChanged(ctx, domain.WishlistEvent{
		Action:   domain.ActionAdded,
		Products: []domain.Product{sampleProduct()},
	})

	ps, err := s.LoadWishlist()
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	// a cleared ledger persists as empty
	s.CartChanged(ctx, domain.CartEvent{Action: domain.ActionCleared})

	lines, err = s.LoadCart()
	require.NoError(t, err)
	assert.Empty(t, lines)
}
