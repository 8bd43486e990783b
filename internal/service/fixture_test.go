package service_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/mocks"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fixture wires every service to one set of map-backed stores.
type fixture struct {
	users  *mocks.MockUserStore
	items  *mocks.MockItemStore
	carts  *mocks.MockCartStore
	orders *mocks.MockOrderStore
	tx     *mocks.MockTransactor

	userService  service.UserService
	itemService  service.ItemService
	cartService  service.CartService
	orderService service.OrderService
}

func newFixture(t *testing.T, items ...domain.Item) *fixture {
	t.Helper()

	f := &fixture{
		users:  mocks.NewMockUserStore(),
		items:  mocks.NewMockItemStore(items...),
		carts:  mocks.NewMockCartStore(),
		orders: mocks.NewMockOrderStore(),
		tx:     &mocks.MockTransactor{},
	}
	logger := testLogger()
	f.userService = service.NewUserService(f.users, f.carts, &mocks.MockPasswordHasher{}, f.tx, logger)
	f.itemService = service.NewItemService(f.items, logger)
	f.cartService = service.NewCartService(f.users, f.items, f.carts, f.tx, logger)
	f.orderService = service.NewOrderService(f.users, f.carts, f.orders, f.tx, logger)
	return f
}

func newItem(name, price string) domain.Item {
	return domain.Item{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}
