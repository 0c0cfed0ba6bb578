package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/service"
	"github.com/shoply/storefront-api/internal/infrastructure/db/memory"
)

// testServer wires the real services over in-memory repositories so handler
// tests exercise the full request path: bind, validate, service call, render.
type testServer struct {
	echo     *echo.Echo
	users    *memory.UserRepository
	products *memory.ProductRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	categories := memory.NewCategoryRepository()
	log := zerolog.Nop()

	authz := service.NewAuthorizer(users)
	accounts := service.NewAccountService(users, authz, log)
	catalog := service.NewCatalogService(products, categories, authz, nil, log)
	cart := service.NewCartService(users, products, log)

	accountHandler := NewAccountHandler(accounts)
	catalogHandler := NewCatalogHandler(catalog)
	categoryHandler := NewCategoryHandler(catalog)
	cartHandler := NewCartHandler(cart)

	e := echo.New()
	e.Validator = NewValidator()

	e.POST("/register", accountHandler.Register)
	e.POST("/login", accountHandler.Login)
	e.POST("/deactivate", accountHandler.Deactivate)

	e.GET("/products", catalogHandler.List)
	e.POST("/products", catalogHandler.Create)
	e.PUT("/products/:id", catalogHandler.Update)
	e.DELETE("/products/:id", catalogHandler.Delete)

	e.POST("/categories", categoryHandler.Create)
	e.PUT("/categories/:id", categoryHandler.Update)
	e.DELETE("/categories/:id", categoryHandler.Delete)

	e.POST("/cart", cartHandler.Add)
	e.GET("/cart", cartHandler.View)

	return &testServer{echo: e, users: users, products: products}
}

func (ts *testServer) seedUser(t *testing.T, username, password, role string) *domain.User {
	t.Helper()
	user, err := ts.users.Create(context.Background(), &domain.User{
		Username: username, Password: password, Role: role, IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func (ts *testServer) seedProduct(t *testing.T, name string, price float64, inStock bool) *domain.Product {
	t.Helper()
	product, err := ts.products.Insert(context.Background(), &domain.Product{
		Name: name, AmountInStock: 50, Price: price, InStock: inStock,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}

// request performs an HTTP round trip through the echo instance. An empty body
// sends no payload at all.
func (ts *testServer) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
