package service_test

import (
	"errors"
	"testing"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyWishlist(t *testing.T) *service.Wishlist {
	t.Helper()
	return service.NewWishlist(newReaderStub(productA(), productB()), snapStub{})
}

func TestWishlist_Toggle(t *testing.T) {
	ctx := t.Context()

	t.Run("AbsentProductAdded", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		added, err := wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, wl.Contains(productA().ID))
	})

	t.Run("PresentProductRemoved", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		_, err := wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)

		added, err := wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, wl.Contains(productA().ID))
	})

	t.Run("DoubleToggleRestoresInitialState", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		_, err := wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)
		_, err = wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)

		assert.Empty(t, wl.Products())
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		_, err := wl.Toggle(ctx, 999)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, wl.Products())
	})

	t.Run("InsertionOrderPreserved", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		_, err := wl.Toggle(ctx, productB().ID)
		require.NoError(t, err)
		_, err = wl.Toggle(ctx, productA().ID)
		require.NoError(t, err)

		products := wl.Products()
		require.Len(t, products, 2)
		assert.Equal(t, productB().ID, products[0].ID)
		assert.Equal(t, productA().ID, products[1].ID)
	})
}

func TestWishlist_Add(t *testing.T) {
	ctx := t.Context()

	t.Run("Inserts", func(t *testing.T) {
		wl := newEmptyWishlist(t)

		require.NoError(t, wl.Add(ctx, productA().ID))
		assert.True(t, wl.Contains(productA().ID))
	})

	t.Run("PresentProductIsNoOp", func(t *testing.T) {
		wl := newEmptyWishlist(t)
		rec := &wishlistRecorder{}
		wl.Watch(rec)

		require.NoError(t, wl.Add(ctx, productA().ID))
		require.NoError(t, wl.Add(ctx, productA().ID))

		assert.Len(t, wl.Products(), 1)
		assert.Len(t, rec.events, 1)
	})
}

func TestWishlist_Remove(t *testing.T) {
	ctx := t.Context()

	t.Run("Removes", func(t *testing.T) {
		wl := newEmptyWishlist(t)
		require.NoError(t, wl.Add(ctx, productA().ID))

		require.NoError(t, wl.Remove(ctx, productA().ID))
		assert.False(t, wl.Contains(productA().ID))
	})

	t.Run("AbsentProductIsNoOp", func(t *testing.T) {
		wl := newEmptyWishlist(t)
		rec := &wishlistRecorder{}
		wl.Watch(rec)

		require.NoError(t, wl.Remove(ctx, 999))
		assert.Empty(t, rec.events)
	})
}

func TestWishlist_Clear(t *testing.T) {
	ctx := t.Context()

	wl := newEmptyWishlist(t)
	require.NoError(t, wl.Add(ctx, productA().ID))
	require.NoError(t, wl.Add(ctx, productB().ID))

	wl.Clear(ctx)
	assert.Empty(t, wl.Products())
}

func TestWishlist_Listeners(t *testing.T) {
	ctx := t.Context()

	wl := newEmptyWishlist(t)
	rec := &wishlistRecorder{}
	wl.Watch(rec)

	_, err := wl.Toggle(ctx, productA().ID)
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	evt := rec.last()
	assert.Equal(t, domain.ActionAdded, evt.Action)
	assert.Equal(t, productA().ID, evt.Product.ID)
	require.Len(t, evt.Products, 1)

	_, err = wl.Toggle(ctx, productA().ID)
	require.NoError(t, err)

	evt = rec.last()
	assert.Equal(t, domain.ActionRemoved, evt.Action)
	assert.Empty(t, evt.Products)
}

func TestWishlist_Rehydration(t *testing.T) {
	t.Run("FromSnapshot", func(t *testing.T) {
		snap := snapStub{wishlist: []domain.Product{productB()}}

		wl := service.NewWishlist(newReaderStub(productB()), snap)
		assert.True(t, wl.Contains(productB().ID))
	})

	t.Run("LoadFailureStartsEmpty", func(t *testing.T) {
		snap := snapStub{err: errors.New("corrupt store")}

		wl := service.NewWishlist(newReaderStub(productB()), snap)
		assert.Empty(t, wl.Products())
	})
}
