package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/order/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })

	before := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/order/{id}", "404"))
	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/order/"+id, nil))
	}
	after := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/order/{id}", "404"))

	assert.Equal(t, 2.0, after-before)
}

func TestOrderFailedDefaultsReason(t *testing.T) {
	before := testutil.ToFloat64(metrics.OrderFailures.WithLabelValues("unexpected"))
	metrics.OrderFailed("")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OrderFailures.WithLabelValues("unexpected"))-before)
}

func TestHandlerExposesRegistry(t *testing.T) {
	metrics.OrdersPlaced.Inc()

	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "storefront_orders_placed_total"))
}
