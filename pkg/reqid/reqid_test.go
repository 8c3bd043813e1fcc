package reqid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/reqid"
)

func run(header string) (seen string, echoed string) {
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(reqid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get(reqid.Header)
}

func TestGeneratesID(t *testing.T) {
	seen, echoed := run("")
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, echoed)
}

func TestReusesUpstreamID(t *testing.T) {
	seen, _ := run("gateway-123")
	assert.Equal(t, "gateway-123", seen)
}

func TestRejectsMalformedUpstreamID(t *testing.T) {
	seen, _ := run("bad id\nwith newline")
	assert.Len(t, seen, 32)

	seen, _ = run(strings.Repeat("a", 100))
	assert.Len(t, seen, 32)
}
