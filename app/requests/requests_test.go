package requests_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/validate"
)

func TestIntAcceptsNumericStrings(t *testing.T) {
	var in requests.Inventory
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":"4","stock":"0"}`), &in))
	assert.Equal(t, requests.Int(4), in.ProductID)
	require.NotNil(t, in.Stock)
	assert.Equal(t, requests.Int(0), *in.Stock)
	assert.Empty(t, validate.Struct(&in))
}

func TestIntRejectsGarbage(t *testing.T) {
	var in requests.Inventory
	assert.Error(t, json.Unmarshal([]byte(`{"product_id":"four"}`), &in))
}

func TestFloatAcceptsNumericStrings(t *testing.T) {
	var p requests.Product
	require.NoError(t, json.Unmarshal([]byte(`{"price":"19.5"}`), &p))
	assert.Equal(t, requests.Float(19.5), p.Price)
}

func TestInventoryRejectsNegativeStock(t *testing.T) {
	var in requests.Inventory
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":1,"stock":-1}`), &in))
	errs := validate.Struct(&in)
	assert.Contains(t, errs, "stock")
}

func TestInventoryRequiresStock(t *testing.T) {
	var in requests.Inventory
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":1}`), &in))
	assert.Contains(t, validate.Struct(&in), "stock")
}

func TestOrderValidationReportsNestedFields(t *testing.T) {
	body := `{
		"user_email": "ada@example.com",
		"status": "pending",
		"total_price": 20,
		"payment_method_id": 1,
		"items": [{"product_id": 1, "quantity": 0, "price": 10}],
		"shipping_address": {"street_address": "Main", "city": "", "postal_code": "0000", "country": "Y"}
	}`
	var in requests.Order
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	errs := validate.Struct(&in)
	assert.Contains(t, errs, "items[0].quantity")
	assert.Contains(t, errs, "shipping_address.city")
	assert.Len(t, errs, 2)
}

func TestOrderRequiresItemsAndAddress(t *testing.T) {
	var in requests.Order
	require.NoError(t, json.Unmarshal([]byte(`{"user_email":"ada@example.com","status":"pending","total_price":1,"payment_method_id":1}`), &in))

	errs := validate.Struct(&in)
	assert.Contains(t, errs, "items")
	assert.Contains(t, errs, "shipping_address")
}

func TestOrderPatchColumns(t *testing.T) {
	var p requests.OrderPatch
	assert.Empty(t, p.Columns())

	require.NoError(t, json.Unmarshal([]byte(`{"status":"shipped","total_price":"12.5"}`), &p))
	assert.Equal(t, map[string]any{"status": "shipped", "total_price": 12.5}, p.Columns())
}
