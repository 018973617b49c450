package usecase

import (
	"context"
	"testing"

	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

func newCartUCForTest() (*CartUseCase, *fakeCartRepo) {
	repo := newFakeCartRepo()
	catalog := &memoryCatalog{products: DefaultProducts()}
	return NewCartUC(repo, catalog, nopLogger{}), repo
}

func TestCartAddItemTwiceIncrementsQuantity(t *testing.T) {
	uc, _ := newCartUCForTest()
	ctx := context.Background()

	view, err := uc.AddItem(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = uc.AddItem(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, int64(2*3599900), view.Subtotal)
	assert.Equal(t, 2, view.TotalItems)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	uc, repo := newCartUCForTest()

	_, err := uc.AddItem(context.Background(), testSession, 9999)
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Zero(t, repo.saves)
}

func TestCartSubtotalAcrossItems(t *testing.T) {
	uc, _ := newCartUCForTest()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testSession, 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, testSession, 5)
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, testSession, 5, 2)
	require.NoError(t, err)

	// 1x3599900 + 3x779900
	assert.Equal(t, int64(3599900+3*779900), view.Subtotal)
	assert.Equal(t, 4, view.TotalItems)
}

func TestCartUpdateQuantityClampsAtOne(t *testing.T) {
	uc, _ := newCartUCForTest()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testSession, 3)
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, testSession, 3, -5)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartUpdateQuantityAbsentIsNoop(t *testing.T) {
	uc, repo := newCartUCForTest()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testSession, 3)
	require.NoError(t, err)
	savesBefore := repo.saves

	view, err := uc.UpdateQuantity(ctx, testSession, 777, 4)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, savesBefore, repo.saves)
}

func TestCartRemoveItemRegardlessOfQuantity(t *testing.T) {
	uc, _ := newCartUCForTest()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, testSession, 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, testSession, 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, testSession, 4)
	require.NoError(t, err)

	view, err := uc.RemoveItem(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(4), view.Items[0].ProductID)
}

func TestCartStartsEmpty(t *testing.T) {
	uc, _ := newCartUCForTest()

	view, err := uc.GetCart(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Subtotal)
	assert.Zero(t, view.TotalItems)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	uc, _ := newCartUCForTest()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "session-a", 1)
	require.NoError(t, err)

	view, err := uc.GetCart(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
