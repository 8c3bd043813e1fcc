package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/validate"
)

type address struct {
	Street string `json:"street_address" validate:"required"`
	City   string `json:"city"           validate:"required"`
}

type line struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	Price     float64 `json:"price"      validate:"required,gt=0"`
}

type checkout struct {
	Email   string  `json:"user_email"       validate:"required,email"`
	Status  string  `json:"status"           validate:"required,min=3"`
	Items   []line  `json:"items"            validate:"required"`
	Address address `json:"shipping_address" validate:"required"`
	Note    string  `json:"note"             validate:"nullable,max=10"`
}

func validCheckout() checkout {
	return checkout{
		Email:   "ada@example.com",
		Status:  "pending",
		Items:   []line{{ProductID: 1, Quantity: 2, Price: 9.5}},
		Address: address{Street: "1 Main St", City: "Springfield"},
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(validCheckout())
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkout{})
	assert.Contains(t, errs, "user_email")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "items")
	assert.Contains(t, errs, "shipping_address.city")
}

func TestNestedSliceErrorsAreIndexed(t *testing.T) {
	in := validCheckout()
	in.Items = append(in.Items, line{ProductID: 2, Quantity: 0, Price: 1})

	errs := validate.Struct(&in)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "items[1].quantity")
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := validCheckout()
	in.Note = ""
	assert.Empty(t, validate.Struct(in))

	in.Note = "far too long for the limit"
	assert.Contains(t, validate.Struct(in), "note")
}

func TestEmailRule(t *testing.T) {
	in := validCheckout()
	in.Email = "not-an-email"
	assert.Equal(t, "The user_email must be a valid email address.", validate.Struct(in)["user_email"])
}

func TestPointerRequiredAllowsZero(t *testing.T) {
	type stock struct {
		Stock *int `json:"stock" validate:"required,gte=0"`
	}
	zero, negative := 0, -1

	assert.Contains(t, validate.Struct(stock{}), "stock")
	assert.Empty(t, validate.Struct(stock{Stock: &zero}))
	assert.Contains(t, validate.Struct(stock{Stock: &negative}), "stock")
}

func TestMinOnStringCountsRunes(t *testing.T) {
	type in struct {
		Title string `json:"title" validate:"required,min=3"`
	}
	assert.Contains(t, validate.Struct(in{Title: "ab"}), "title")
	assert.Empty(t, validate.Struct(in{Title: "çaé"}))
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=admin,user,max=10"`
	}
	assert.Empty(t, validate.Struct(in{Role: "user"}))
	assert.Contains(t, validate.Struct(in{Role: "root"}), "role")
}

func TestNonStructIsIgnored(t *testing.T) {
	assert.Empty(t, validate.Struct(42))
	var nilPtr *checkout
	assert.Empty(t, validate.Struct(nilPtr))
}
