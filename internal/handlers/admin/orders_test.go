package admin

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

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("token", "jeton-admin")
		c.Set("email", "admin@test.fr")
	})
	r.GET("/orders", ListOrders)
	r.GET("/orders/:id", GetOrder)
	r.PUT("/orders/:id/status", SetStatus)
	return r
}

func TestGetOrderExposesAllowedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/orders/4", r.URL.Path)
		json.NewEncoder(w).Encode(models.Order{ID: 4, Status: orderstatus.Placed})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/4", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Order struct {
			Badge         string   `json:"badge"`
			AllowedStatus []string `json:"allowedStatus"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "neutral", body.Order.Badge)
	assert.ElementsMatch(t, []string{"CONFIRMED", "CANCELLED"}, body.Order.AllowedStatus)
}

func TestSetStatusBoundByTransitionTable(t *testing.T) {
	updateCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			updateCalled = true
		}
		json.NewEncoder(w).Encode(models.Order{ID: 4, Status: orderstatus.Delivered})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	// DELIVERED est terminal, même pour l'administration
	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/4/status?status=CANCELLED", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, updateCalled)
}

func TestSetStatusLegalTransition(t *testing.T) {
	current := orderstatus.Confirmed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			current = orderstatus.Status(r.URL.Query().Get("status"))
		}
		json.NewEncoder(w).Encode(models.Order{ID: 4, Status: current})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/4/status?status=SHIPPED", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Order struct {
			Status string `json:"status"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SHIPPED", body.Order.Status)
}

func TestSetStatusResyncsOnBackendRefusal(t *testing.T) {
	// CONFIRMED -> SHIPPED est légal localement ; si le backend refuse quand
	// même, le 409 doit porter la commande relue après le refus.
	gets := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "commande déjà livrée"})
			return
		}
		gets++
		status := orderstatus.Confirmed
		if gets > 1 {
			status = orderstatus.Delivered
		}
		json.NewEncoder(w).Encode(models.Order{ID: 4, Status: status})
	}))
	defer srv.Close()
	shopease.API = shopease.NewClient(srv.URL)

	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/orders/4/status?status=SHIPPED", nil))
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Order struct {
			Status        string   `json:"status"`
			AllowedStatus []string `json:"allowedStatus"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DELIVERED", body.Order.Status, "la réponse doit refléter l'état authoritaire relu")
	assert.Empty(t, body.Order.AllowedStatus)
}

func TestListOrdersRejectsUnknownStatusFilter(t *testing.T) {
	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?status=LIVREE", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
