// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 8 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "8388608"), 10, 64)
	if err != nil || n <= 0 {
		return 8 << 20
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures and (nil, err)
// when the body is malformed or too large.
func JSON(r *http.Request, dest any) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	if err = json.NewDecoder(r.Body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if errs = validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

// Form parses a multipart (or urlencoded) body, copies fields into dest by
// their `form` tag and runs validation. Uploaded files are returned for the
// named file field.
func Form(r *http.Request, dest any, fileField string) (files []*multipart.FileHeader, errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(maxBodyBytes())
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("invalid form: %w", err)
	}

	if errs = assign(r.Form, dest); validate.HasErrors(errs) {
		return nil, errs, nil
	}
	if errs = validate.Struct(dest); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	if r.MultipartForm != nil && fileField != "" {
		files = r.MultipartForm.File[fileField]
	}
	return files, nil, nil
}

// assign copies scalar form values onto tagged fields. Conversion failures
// are reported per field so they surface alongside validation errors.
func assign(values map[string][]string, dest any) map[string]string {
	errs := make(map[string]string)

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errs
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		raw := strings.TrimSpace(vals[0])

		fv := rv.Field(i)
		if fv.Kind() == reflect.Ptr {
			if raw == "" {
				continue
			}
			fv.Set(reflect.New(fv.Type().Elem()))
			fv = fv.Elem()
		}
		if err := setScalar(fv, raw); err != nil {
			errs[name] = fmt.Sprintf("The %s field must be a number.", name)
		}
	}
	return errs
}

func setScalar(fv reflect.Value, raw string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if raw == "" {
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	}
	return nil
}
