package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
)

type cartEnv struct {
	*testEnv
	Cart  *CartService
	Users *UserService
}

func newCartEnv(t *testing.T) *cartEnv {
	t.Helper()
	env := newTestEnv(t)
	return &cartEnv{
		testEnv: env,
		Cart: &CartService{
			Carts:    &repo.CartRepo{DB: env.DB},
			Users:    &repo.UserRepo{DB: env.DB},
			Products: &repo.ProductRepo{DB: env.DB},
			Events:   env.Events,
		},
		Users: &UserService{Users: &repo.UserRepo{DB: env.DB}},
	}
}

func (env *cartEnv) seed(t *testing.T) (*models.User, *models.Product) {
	t.Helper()
	ctx := context.Background()
	user, err := env.Users.CreateUser(ctx, transport.UserRequest{Username: "reader"})
	require.NoError(t, err)
	cat := env.category(t, "Books")
	product, err := env.Svc.SaveProduct(ctx, transport.ProductRequest{Title: "Novel", CategoryID: cat.ID, Price: 12, Quantity: 4})
	require.NoError(t, err)
	return user, product
}

func TestFindCartID(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()
	user, product := env.seed(t)

	_, found, err := env.Cart.FindCartID(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, found)

	item, created, err := env.Cart.AddToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, created)

	id, found, err := env.Cart.FindCartID(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, item.ID, id)
}

func TestAddToCart_Idempotent(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()
	user, product := env.seed(t)

	first, created, err := env.Cart.AddToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, "Novel", first.Product.Title)

	second, created, err := env.Cart.AddToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	lines, err := env.Cart.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Contains(t, env.Events.types(), events.CartItemAdded)
}

func TestAddToCart_MissingReferences(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()
	user, product := env.seed(t)

	_, _, err := env.Cart.AddToCart(ctx, user.ID+50, product.ID)
	requireCode(t, err, CodeNotFound)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = env.Cart.AddToCart(ctx, user.ID, product.ID+50)
	requireCode(t, err, CodeNotFound)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()
	user, product := env.seed(t)

	_, _, err := env.Cart.AddToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, env.Cart.RemoveFromCart(ctx, user.ID, product.ID))
	err = env.Cart.RemoveFromCart(ctx, user.ID, product.ID)
	requireCode(t, err, CodeNotFound)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	lines, err := env.Cart.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDeleteProduct_ClearsCartLines(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()
	user, product := env.seed(t)
	_, _, err := env.Cart.AddToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, env.Svc.DeleteProduct(ctx, product.ID))

	_, found, err := env.Cart.FindCartID(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateUser(t *testing.T) {
	env := newCartEnv(t)
	ctx := context.Background()

	u, err := env.Users.CreateUser(ctx, transport.UserRequest{Username: "admin", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	_, err = env.Users.CreateUser(ctx, transport.UserRequest{Username: "admin"})
	requireCode(t, err, CodeConflict)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = env.Users.CreateUser(ctx, transport.UserRequest{Username: ""})
	requireCode(t, err, CodeBadRequest)

	_, err = env.Users.CreateUser(ctx, transport.UserRequest{Username: "x", Role: "root"})
	requireCode(t, err, CodeBadRequest)

	got, err := env.Users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = env.Users.GetUser(ctx, u.ID+1)
	requireCode(t, err, CodeNotFound)
}
