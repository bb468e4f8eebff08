package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopease_front_end/internal/models"
	"shopease_front_end/internal/orderstatus"
	"shopease_front_end/internal/shopease"
)

func buyerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("token", "jeton-test")
		c.Set("email", "acheteur@test.fr")
	})
	r.GET("/orders", ListOrders)
	r.PUT("/orders/:id/cancel", CancelOrder)
	r.POST("/checkout", Checkout)
	return r
}

func TestListOrdersDecoratesAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/buyer/me", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{
			{ID: 1, Status: orderstatus.Placed, Quantity: 2, Product: &models.Product{Name: "Clavier", Price: 10}},
			{ID: 2, Status: orderstatus.Shipped, Quantity: 1, Product: &models.Product{Name: "Souris", Price: 5}},
		})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Orders []struct {
			ID          int64  `json:"id"`
			Badge       string `json:"badge"`
			StepIndex   int    `json:"stepIndex"`
			Cancellable bool   `json:"cancellable"`
			TotalPrice  string `json:"totalPrice"`
		} `json:"orders"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Orders, 2)
	assert.Equal(t, 2, body.Total)

	assert.Equal(t, "neutral", body.Orders[0].Badge)
	assert.True(t, body.Orders[0].Cancellable)
	assert.Equal(t, "20.00", body.Orders[0].TotalPrice)

	assert.Equal(t, "info", body.Orders[1].Badge)
	assert.False(t, body.Orders[1].Cancellable)
	assert.Equal(t, 2, body.Orders[1].StepIndex)
}

func TestListOrdersStatusAndTextFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{
			{ID: 1, Status: orderstatus.Placed, Product: &models.Product{Name: "Clavier"}},
			{ID: 2, Status: orderstatus.Placed, Product: &models.Product{Name: "Souris"}},
			{ID: 3, Status: orderstatus.Delivered, Product: &models.Product{Name: "Clavier"}},
		})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?status=PLACED&q=clav", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Orders []struct {
			ID int64 `json:"id"`
		} `json:"orders"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, int64(1), body.Orders[0].ID)
	assert.Equal(t, 3, body.Total)
}

func TestCancelOrderRefusedLocallyWhenShipped(t *testing.T) {
	cancelCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders/7/cancel" {
			cancelCalled = true
		}
		json.NewEncoder(w).Encode([]models.Order{{ID: 7, Status: orderstatus.Shipped}})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/7/cancel", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, cancelCalled, "l'appel backend ne doit pas partir pour une annulation interdite")
}

func TestCancelOrderUnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{{ID: 1, Status: orderstatus.Placed}})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/99/cancel", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelOrderResyncsOnBackendRefusal(t *testing.T) {
	// Annulation légale au moment de la relecture (PLACED) mais refusée par le
	// backend car la commande a avancé entre-temps : le 409 doit porter l'état
	// relu après le refus.
	gets := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "commande déjà expédiée"})
			return
		}
		gets++
		status := orderstatus.Placed
		if gets > 1 {
			status = orderstatus.Shipped
		}
		json.NewEncoder(w).Encode([]models.Order{{ID: 7, Status: status}})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/7/cancel", nil))
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Orders []struct {
			Status      string `json:"status"`
			Cancellable bool   `json:"cancellable"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "SHIPPED", body.Orders[0].Status, "la réponse doit refléter l'état authoritaire relu")
	assert.False(t, body.Orders[0].Cancellable)
}

func TestCancelOrderSuccessReturnsFreshList(t *testing.T) {
	cancelled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && r.URL.Path == "/orders/7/cancel" {
			cancelled = true
			json.NewEncoder(w).Encode(models.Order{ID: 7, Status: orderstatus.Cancelled})
			return
		}
		status := orderstatus.Placed
		if cancelled {
			status = orderstatus.Cancelled
		}
		json.NewEncoder(w).Encode([]models.Order{{ID: 7, Status: status}})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	buyerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/7/cancel", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Orders  []struct {
			Status string `json:"status"`
			Badge  string `json:"badge"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Commande annulée", body.Message)
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "CANCELLED", body.Orders[0].Status)
	assert.Equal(t, "error", body.Orders[0].Badge)
}
