package ctx_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/apperr"
	appctx "github.com/shashiranjanraj/storefront/pkg/ctx"
)

func serve(h appctx.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	appctx.Wrap(h)(rec, req)
	return rec
}

func TestSuccessEnvelope(t *testing.T) {
	rec := serve(func(c *appctx.Context) {
		c.Success("ok", map[string]any{"id": 1})
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"ok","data":{"id":1}}`, rec.Body.String())
}

func TestBindJSONInvalidIs400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":""}`))
	rec := serve(func(c *appctx.Context) {
		var in struct {
			Title string `json:"title" validate:"required"`
		}
		if c.BindJSON(&in) {
			t.Error("expected BindJSON to fail")
		}
	}, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title"`)
}

func TestParamID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/brand/{id}", appctx.Wrap(func(c *appctx.Context) {
		id, ok := c.ParamID("id")
		if !ok {
			return
		}
		c.Success("ok", id)
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brand/12", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":12`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brand/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFailMapsKinds(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{apperr.NotFoundf("op", apperr.CodeOrderNotFound, "Order not found"), http.StatusNotFound, "Order not found"},
		{fmt.Errorf("svc: %w", apperr.Invalidf("op", apperr.CodeInsufficientStock, "Not enough stock for product with ID 4")), http.StatusBadRequest, "Not enough stock for product with ID 4"},
		{apperr.Conflictf("op", apperr.CodeDuplicate, "Email is already registered"), http.StatusBadRequest, "Email is already registered"},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		rec := serve(func(c *appctx.Context) { c.Fail(tc.err) }, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, tc.code, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.msg)
		assert.NotContains(t, rec.Body.String(), "refused")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.1")

	serve(func(c *appctx.Context) {
		assert.Equal(t, "1.2.3.4", c.ClientIP())
	}, req)
}

func TestSetCookieIsHTTPOnly(t *testing.T) {
	rec := serve(func(c *appctx.Context) {
		c.SetCookie("session_token", "abc", 3600, false)
		c.Success("ok", nil)
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
	}
}
