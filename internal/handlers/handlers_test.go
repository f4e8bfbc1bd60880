package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsphere/petsphere-api/internal/auth"
	"github.com/petsphere/petsphere-api/internal/handlers"
	"github.com/petsphere/petsphere-api/internal/routes"
	"github.com/petsphere/petsphere-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	db := store.New()
	gateway := &auth.Gateway{
		Store:    db,
		Sessions: auth.NewSessionManager([]byte("test-secret"), time.Hour),
	}
	app := &handlers.Handlers{Store: db, Auth: gateway}
	return routes.SetupRouter(app, gateway), db
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(router *gin.Engine, method, path string, body any, session *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("response carries no session cookie")
	return nil
}

// registerUser creates an account through the API and returns its session.
func registerUser(t *testing.T, router *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/register", gin.H{
		"username": username,
		"password": "hunter2secret",
		"email":    username + "@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("register logs the account in and hides the password", func(t *testing.T) {
		router, _ := setupServer(t)

		w := doJSON(router, http.MethodPost, "/api/register", gin.H{
			"username": "alice",
			"password": "hunter2secret",
			"email":    "alice@example.com",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, body, "password")

		cookie := sessionCookie(t, w)
		me := doJSON(router, http.MethodGet, "/api/user", nil, cookie)
		require.Equal(t, http.StatusOK, me.Code)
		assert.Equal(t, "alice", decodeBody(t, me)["username"])
	})

	t.Run("duplicate username and email are rejected", func(t *testing.T) {
		router, _ := setupServer(t)
		registerUser(t, router, "alice")

		w := doJSON(router, http.MethodPost, "/api/register", gin.H{
			"username": "alice",
			"password": "hunter2secret",
			"email":    "other@example.com",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(router, http.MethodPost, "/api/register", gin.H{
			"username": "alice2",
			"password": "hunter2secret",
			"email":    "alice@example.com",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login failures are indistinguishable", func(t *testing.T) {
		router, _ := setupServer(t)
		registerUser(t, router, "alice")

		unknown := doJSON(router, http.MethodPost, "/api/login", gin.H{
			"username": "nobody", "password": "hunter2secret",
		}, nil)
		wrongPw := doJSON(router, http.MethodPost, "/api/login", gin.H{
			"username": "alice", "password": "wrong-password",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
		assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		router, _ := setupServer(t)
		cookie := registerUser(t, router, "alice")

		w := doJSON(router, http.MethodPost, "/api/logout", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		me := doJSON(router, http.MethodGet, "/api/user", nil, cookie)
		assert.Equal(t, http.StatusUnauthorized, me.Code)
	})

	t.Run("protected routes reject anonymous requests", func(t *testing.T) {
		router, _ := setupServer(t)

		for _, path := range []string{"/api/user", "/api/cart", "/api/orders", "/api/appointments", "/api/wishlist"} {
			w := doJSON(router, http.MethodGet, path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Run("catalog filters", func(t *testing.T) {
		router, db := setupServer(t)
		db.SeedDemoCatalog()

		w := doJSON(router, http.MethodGet, "/api/products", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var all []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
		assert.Len(t, all, 6)

		w = doJSON(router, http.MethodGet, "/api/products?category=dog", nil, nil)
		var dogs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dogs))
		assert.Len(t, dogs, 3)

		w = doJSON(router, http.MethodGet, "/api/products?featured=true", nil, nil)
		var featured []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
		assert.Len(t, featured, 5)
	})

	t.Run("missing product is a 404", func(t *testing.T) {
		router, _ := setupServer(t)
		w := doJSON(router, http.MethodGet, "/api/products/42", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create and partial update", func(t *testing.T) {
		router, _ := setupServer(t)
		cookie := registerUser(t, router, "admin")

		w := doJSON(router, http.MethodPost, "/api/products", gin.H{
			"name":        "Chew Toy",
			"description": "Durable rubber toy",
			"price":       12.99,
			"imageUrl":    "https://example.com/toy.jpg",
			"category":    "dog",
			"stock":       10,
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decodeBody(t, w)
		id := int64(created["id"].(float64))

		w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/products/%d", id), gin.H{
			"isOnSale":  true,
			"salePrice": 9.99,
		}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody(t, w)
		assert.Equal(t, "Chew Toy", updated["name"], "untouched field preserved")
		assert.Equal(t, true, updated["isOnSale"])
		assert.Equal(t, 9.99, updated["salePrice"])
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("adding the same product twice merges onto one row", func(t *testing.T) {
		router, db := setupServer(t)
		cookie := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		w := doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 4, "quantity": 2}, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		first := decodeBody(t, w)

		w = doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 4, "quantity": 3}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
		second := decodeBody(t, w)
		assert.Equal(t, first["id"], second["id"])
		assert.Equal(t, float64(5), second["quantity"])

		w = doJSON(router, http.MethodGet, "/api/cart", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		cart := decodeBody(t, w)
		items := cart["items"].([]any)
		require.Len(t, items, 1)

		row := items[0].(map[string]any)
		assert.Equal(t, float64(5), row["quantity"])
		assert.Equal(t, "Durable Dog Chew Toy", row["product"].(map[string]any)["name"])
		assert.Equal(t, float64(5), cart["totalItems"])
		assert.InDelta(t, 5*12.99, cart["subtotal"].(float64), 1e-9)
	})

	t.Run("subtotal uses sale prices", func(t *testing.T) {
		router, db := setupServer(t)
		cookie := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		// Product 3 is the fish feeder: 19.99 list, 15.99 on sale.
		w := doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 3, "quantity": 2}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodGet, "/api/cart", nil, cookie)
		cart := decodeBody(t, w)
		assert.InDelta(t, 2*15.99, cart["subtotal"].(float64), 1e-9)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		router, _ := setupServer(t)
		cookie := registerUser(t, router, "alice")

		w := doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 42, "quantity": 1}, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("remove and clear", func(t *testing.T) {
		router, db := setupServer(t)
		cookie := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		w := doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 1}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
		id := int64(decodeBody(t, w)["id"].(float64))

		w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/cart/%d", id), nil, cookie)
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/cart/%d", id), nil, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code, "second delete finds nothing")

		w = doJSON(router, http.MethodDelete, "/api/cart", nil, cookie)
		assert.Equal(t, http.StatusNoContent, w.Code, "clearing an empty cart succeeds")
	})
}

func TestCheckout(t *testing.T) {
	t.Run("order items snapshot the effective price and the cart empties", func(t *testing.T) {
		router, db := setupServer(t)
		cookie := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		// Fish feeder on sale at 15.99.
		w := doJSON(router, http.MethodPost, "/api/cart", gin.H{"productId": 3, "quantity": 2}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodPost, "/api/orders", gin.H{
			"total":           31.98,
			"paymentMethod":   "credit_card",
			"shippingAddress": "1 Main St",
			"billingAddress":  "1 Main St",
			"shippingMethod":  "standard",
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		order := decodeBody(t, w)
		orderID := int64(order["id"].(float64))
		assert.Equal(t, "pending", order["status"])
		assert.NotEmpty(t, order["createdAt"])

		// Reprice the product after checkout; the snapshot must hold.
		w = doJSON(router, http.MethodPut, "/api/products/3", gin.H{"salePrice": 1.0}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		detail := decodeBody(t, w)
		items := detail["items"].([]any)
		require.Len(t, items, 1)
		line := items[0].(map[string]any)
		assert.Equal(t, 15.99, line["price"], "price captured at checkout time")
		assert.Equal(t, float64(2), line["quantity"])

		w = doJSON(router, http.MethodGet, "/api/cart", nil, cookie)
		cart := decodeBody(t, w)
		assert.Empty(t, cart["items"])
	})

	t.Run("status update leaves createdAt alone", func(t *testing.T) {
		router, db := setupServer(t)
		cookie := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		w := doJSON(router, http.MethodPost, "/api/orders", gin.H{
			"total":           25.98,
			"paymentMethod":   "credit_card",
			"shippingAddress": "1 Main St",
			"billingAddress":  "1 Main St",
			"shippingMethod":  "standard",
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
		order := decodeBody(t, w)
		orderID := int64(order["id"].(float64))
		createdAt := order["createdAt"]

		w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), gin.H{"status": "shipped"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody(t, w)
		assert.Equal(t, "shipped", updated["status"])
		assert.Equal(t, createdAt, updated["createdAt"])
	})

	t.Run("orders are private to their owner", func(t *testing.T) {
		router, db := setupServer(t)
		alice := registerUser(t, router, "alice")
		db.SeedDemoCatalog()

		w := doJSON(router, http.MethodPost, "/api/orders", gin.H{
			"total":           10.0,
			"paymentMethod":   "paypal",
			"shippingAddress": "1 Main St",
			"billingAddress":  "1 Main St",
			"shippingMethod":  "standard",
		}, alice)
		require.Equal(t, http.StatusCreated, w.Code)
		orderID := int64(decodeBody(t, w)["id"].(float64))

		bob := registerUser(t, router, "bob")
		w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, bob)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAppointmentEndpoints(t *testing.T) {
	router, _ := setupServer(t)
	cookie := registerUser(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/appointments", gin.H{
		"serviceType":     "grooming",
		"petType":         "dog",
		"petBreed":        "beagle",
		"appointmentDate": "2026-09-15T00:00:00Z",
		"appointmentTime": "morning",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appt := decodeBody(t, w)
	assert.Equal(t, "pending", appt["status"], "status defaults to pending")
	apptID := int64(appt["id"].(float64))

	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/appointments/%d/status", apptID), gin.H{"status": "confirmed"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decodeBody(t, w)["status"])

	w = doJSON(router, http.MethodGet, "/api/appointments", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestWishlistEndpoints(t *testing.T) {
	router, db := setupServer(t)
	cookie := registerUser(t, router, "alice")
	db.SeedDemoCatalog()

	w := doJSON(router, http.MethodPost, "/api/wishlist", gin.H{"productId": 2}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeBody(t, w)

	w = doJSON(router, http.MethodPost, "/api/wishlist", gin.H{"productId": 2}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, first["id"], decodeBody(t, w)["id"], "duplicate add returns the existing row")

	w = doJSON(router, http.MethodGet, "/api/wishlist", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Plush Cat Bed", items[0]["product"].(map[string]any)["name"])

	id := int64(first["id"].(float64))
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/wishlist/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/wishlist/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
