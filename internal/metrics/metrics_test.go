package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/order/order/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/api/order/order/:id", "200"))

	for _, p := range []string{"/api/order/order/1", "/api/order/order/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	after := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/api/order/order/:id", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestHandlerExposesOrderCounter(t *testing.T) {
	OrdersPlaced.WithLabelValues("cash").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "food_order_orders_placed_total")
}
