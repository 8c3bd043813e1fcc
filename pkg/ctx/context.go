// Package ctx provides the request context handed to every controller.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context:
//
//	func (c *BrandController) Show(cx *ctx.Context) {
//	    id, ok := cx.ParamID("id")
//	    if !ok {
//	        return
//	    }
//	    brand, err := c.repo.Find(cx.Context(), id)
//	    if err != nil {
//	        cx.Fail(err)
//	        return
//	    }
//	    cx.Success("Brand fetched", brand)
//	}
//
//	router.Get("/brand/{id}", "brand.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamID parses a positive integer path parameter. On failure it answers
// 400 and returns false.
func (c *Context) ParamID(key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		c.Error(http.StatusBadRequest, "Invalid "+key)
		return 0, false
	}
	return id, true
}

// Query returns a query-string value. Returns "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// Header returns the value of a request header.
func (c *Context) Header(key string) string {
	return c.R.Header.Get(key)
}

// Cookie returns the value of a named cookie.
func (c *Context) Cookie(name string) (string, error) {
	cookie, err := c.R.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClientIP returns the client IP, respecting X-Forwarded-For.
func (c *Context) ClientIP() string {
	if fwd := c.R.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	ip := c.R.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Claims returns the verified session claims placed by the auth middleware.
func (c *Context) Claims() (*auth.Claims, bool) {
	return auth.FromContext(c.R.Context())
}

// ─── Binding ──────────────────────────────────────────────────────────────────

// BindJSON decodes and validates the JSON body. On failure it answers 400
// and returns false.
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if len(errs) > 0 {
		c.ValidationError(errs)
		return false
	}
	return true
}

// BindForm decodes and validates a multipart body, returning the uploaded
// files under fileField.
func (c *Context) BindForm(dest any, fileField string) ([]*multipart.FileHeader, bool) {
	files, errs, err := bind.Form(c.R, dest, fileField)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return nil, false
	}
	if len(errs) > 0 {
		c.ValidationError(errs)
		return nil, false
	}
	return files, true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// SetCookie sets an HTTP-only cookie on the response.
func (c *Context) SetCookie(name, value string, maxAge int, secure bool) {
	http.SetCookie(c.W, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires a cookie.
func (c *Context) ClearCookie(name string) {
	c.SetCookie(name, "", -1, false)
}

// JSON writes an envelope with the given status code.
func (c *Context) JSON(code int, body response.Envelope) {
	c.status = code
	response.Write(c.W, code, body)
}

// Success sends a 200 envelope.
func (c *Context) Success(message string, data any) {
	c.JSON(http.StatusOK, response.Envelope{Message: message, Data: data})
}

// Created sends a 201 envelope.
func (c *Context) Created(message string, data any) {
	c.JSON(http.StatusCreated, response.Envelope{Message: message, Data: data})
}

// Error sends a message-only envelope.
func (c *Context) Error(code int, message string) {
	c.JSON(code, response.Envelope{Message: message})
}

// ValidationError sends a 400 with field-level errors.
func (c *Context) ValidationError(errs map[string]string) {
	c.JSON(http.StatusBadRequest, response.Envelope{Message: "Validation failed", Errors: errs})
}

// Fail translates err into a response. Domain errors keep their message;
// anything else is logged and reported as a generic 500.
func (c *Context) Fail(err error) {
	e, ok := apperr.As(err)
	if !ok || e.Kind == apperr.Unexpected {
		logger.WithCtx(c.Context()).Error("request failed",
			"method", c.R.Method,
			"path", c.R.URL.Path,
			"error", err,
		)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Error(apperr.HTTPStatus(e.Kind), e.Message)
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
