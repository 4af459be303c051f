package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	appinventory "github.com/shopadmin/backend/internal/application/inventory"
	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
)

// fakeInventoryRepo is a canned inventory.Repository for handler tests
type fakeInventoryRepo struct {
	items   []inventory.Item
	written map[uuid.UUID]int64
}

func newFakeInventoryRepo(items ...inventory.Item) *fakeInventoryRepo {
	return &fakeInventoryRepo{items: items, written: make(map[uuid.UUID]int64)}
}

func (f *fakeInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeInventoryRepo) FindAll(_ context.Context) ([]inventory.Item, error) {
	return f.items, nil
}

func (f *fakeInventoryRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int64) error {
	f.written[id] = quantity
	return nil
}

func makeStockItem(name string, quantity, reserved int64) inventory.Item {
	variant := catalog.Variant{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        "SKU-" + name,
		Price:      decimal.RequireFromString("10.00"),
		Product: &catalog.Product{
			BaseEntity: shared.NewBaseEntity(),
			Name:       name,
		},
	}
	return inventory.Item{
		BaseEntity:       shared.NewBaseEntity(),
		VariantID:        variant.ID,
		Quantity:         quantity,
		ReservedQuantity: reserved,
		Variant:          &variant,
	}
}

func newInventoryRouter(repo inventory.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	r := gin.New()
	h := NewInventoryHandler(appinventory.NewService(repo, 10, zap.NewNop()))
	api := r.Group("/api/v1")
	h.RegisterRoutes(api, api)
	return r
}

func TestInventoryHandler_List(t *testing.T) {
	repo := newFakeInventoryRepo(
		makeStockItem("Mug", 20, 2),
		makeStockItem("Apron", 3, 0),
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	newInventoryRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total_units":23`)
	assert.Contains(t, body, `"low_stock_count":1`)
	// Sorted by product name: Apron before Mug
	assert.Less(t, strings.Index(body, "Apron"), strings.Index(body, "Mug"))
}

func TestInventoryHandler_Adjust(t *testing.T) {
	t.Run("remove clamps to reserved quantity", func(t *testing.T) {
		item := makeStockItem("Mug", 10, 4)
		repo := newFakeInventoryRepo(item)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+item.ID.String()+"/adjust",
			strings.NewReader(`{"mode":"remove","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		newInventoryRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(4), repo.written[item.ID])
		assert.Contains(t, w.Body.String(), `"quantity":4`)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		item := makeStockItem("Mug", 10, 0)
		repo := newFakeInventoryRepo(item)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+item.ID.String()+"/adjust",
			strings.NewReader(`{"mode":"add","amount":-5}`))
		req.Header.Set("Content-Type", "application/json")
		newInventoryRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.written)
	})

	t.Run("unknown item returns 404", func(t *testing.T) {
		repo := newFakeInventoryRepo()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+uuid.NewString()+"/adjust",
			strings.NewReader(`{"mode":"add","amount":1}`))
		req.Header.Set("Content-Type", "application/json")
		newInventoryRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
