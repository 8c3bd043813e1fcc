package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := apperr.NotFoundf("orders.Find", apperr.CodeOrderNotFound, "Order %d not found", 7)
	wrapped := fmt.Errorf("service: %w", base)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(wrapped))
	assert.True(t, apperr.Is(wrapped, apperr.CodeOrderNotFound))
	assert.Equal(t, "orders.Find: Order 7 not found", base.Error())
}

func TestPlainErrorIsUnexpected(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, apperr.Unexpected, apperr.KindOf(err))
	assert.Equal(t, apperr.Code(""), apperr.CodeOf(err))
	assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(apperr.KindOf(err)))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("driver: deadlock")
	err := apperr.Wrap("orders.Place", apperr.Unexpected, "", "place order", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadlock")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[apperr.Kind]int{
		apperr.Validation:   http.StatusBadRequest,
		apperr.Conflict:     http.StatusBadRequest,
		apperr.NotFound:     http.StatusNotFound,
		apperr.Unauthorized: http.StatusUnauthorized,
		apperr.Forbidden:    http.StatusForbidden,
		apperr.Unexpected:   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, apperr.HTTPStatus(kind), kind.String())
	}
}
