package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ordering/models"
)

func validationFields(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr
}

func TestDecodeAllowListedPayloads(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) (interface{}, error)
		body   string
	}{
		{
			name:   "user",
			decode: func(b []byte) (interface{}, error) { return DecodeUser(b) },
			body:   `{"username":"budi","password":"secret","role":"kitchen"}`,
		},
		{
			name:   "restaurant",
			decode: func(b []byte) (interface{}, error) { return DecodeRestaurant(b) },
			body:   `{"name":"Warung Sederhana","description":null}`,
		},
		{
			name:   "menu item",
			decode: func(b []byte) (interface{}, error) { return DecodeMenuItem(b) },
			body:   `{"restaurantId":1,"name":"Nasi Goreng","price":"15000.00","category":"non-veg","image":"nasi.jpg","isAvailable":false}`,
		},
		{
			name:   "table",
			decode: func(b []byte) (interface{}, error) { return DecodeTable(b) },
			body:   `{"restaurantId":1,"number":0,"capacity":4}`,
		},
		{
			name:   "order",
			decode: func(b []byte) (interface{}, error) { return DecodeOrder(b) },
			body:   `{"restaurantId":1,"tableId":2,"items":[{"menuItemId":3,"quantity":2,"price":"7.25"}],"total":14.50,"customerName":"Sari"}`,
		},
		{
			name:   "session",
			decode: func(b []byte) (interface{}, error) { return DecodeSession(b) },
			body:   `{"tableId":2,"customerInfo":{"name":"Sari","phone":"0812"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decode([]byte(tt.body))
			assert.NoError(t, err)
		})
	}
}

func TestDecodeOrderValues(t *testing.T) {
	in, err := DecodeOrder([]byte(`{"customerId":5,"restaurantId":1,"tableId":2,"items":[{"menuItemId":3,"quantity":2,"price":"7.25"}],"total":"14.5"}`))
	require.NoError(t, err)

	require.NotNil(t, in.CustomerID)
	assert.Equal(t, uint(5), *in.CustomerID)
	require.Len(t, in.Items, 1)
	assert.Equal(t, "7.25", in.Items[0].Price.String())
	assert.True(t, in.Total.Equal(models.MustMoney("14.50").Decimal))

	order := in.Model()
	assert.Empty(t, order.Status)
	assert.Empty(t, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(3), order.Items[0].MenuItemID)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestDecodeRejectsServerManagedFields(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) (interface{}, error)
		body   string
		fields []string
	}{
		{
			name:   "user id and createdAt",
			decode: func(b []byte) (interface{}, error) { return DecodeUser(b) },
			body:   `{"id":9,"username":"budi","password":"x","createdAt":"2024-01-01T00:00:00Z"}`,
			fields: []string{"id", "createdAt"},
		},
		{
			name:   "restaurant isActive",
			decode: func(b []byte) (interface{}, error) { return DecodeRestaurant(b) },
			body:   `{"name":"A","isActive":false}`,
			fields: []string{"isActive"},
		},
		{
			name:   "table qrCode and isAvailable",
			decode: func(b []byte) (interface{}, error) { return DecodeTable(b) },
			body:   `{"restaurantId":1,"number":1,"capacity":2,"qrCode":"abc","isAvailable":true}`,
			fields: []string{"qrCode", "isAvailable"},
		},
		{
			name:   "order status fields",
			decode: func(b []byte) (interface{}, error) { return DecodeOrder(b) },
			body:   `{"restaurantId":1,"tableId":1,"items":[{"menuItemId":1,"quantity":1,"price":"1"}],"total":"1","status":"served","paymentStatus":"completed","updatedAt":"x"}`,
			fields: []string{"status", "paymentStatus", "updatedAt"},
		},
		{
			name:   "session expiresAt",
			decode: func(b []byte) (interface{}, error) { return DecodeSession(b) },
			body:   `{"tableId":1,"expiresAt":"2030-01-01T00:00:00Z","isActive":true}`,
			fields: []string{"expiresAt", "isActive"},
		},
		{
			name:   "snake case spelling is not an alias",
			decode: func(b []byte) (interface{}, error) { return DecodeMenuItem(b) },
			body:   `{"restaurant_id":1,"restaurantId":1,"name":"Es Teh","price":"5","category":"veg"}`,
			fields: []string{"restaurant_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decode([]byte(tt.body))
			verr := validationFields(t, err)
			for _, f := range tt.fields {
				assert.True(t, verr.Has(f), "expected %q in %v", f, verr.Fields)
			}
		})
	}
}

func TestDecodeMoney(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr string
	}{
		{name: "string two places", price: `"12.50"`},
		{name: "number one place", price: `12.5`},
		{name: "integer", price: `12`},
		{name: "trailing zeros are exact", price: `"12.500"`},
		{name: "zero", price: `"0"`},
		{name: "largest value", price: `"99999999.99"`},
		{name: "three places string", price: `"12.345"`, wantErr: "must have at most 2 decimal places"},
		{name: "three places number", price: `0.125`, wantErr: "must have at most 2 decimal places"},
		{name: "negative", price: `"-1.00"`, wantErr: "must not be negative"},
		{name: "too large", price: `"100000000"`, wantErr: "must be less than 100000000"},
		{name: "huge exponent", price: `"1e5000000"`, wantErr: `decimal "1e5000000" is out of range`},
		{name: "tiny exponent", price: `"1e-5000000"`, wantErr: `decimal "1e-5000000" is out of range`},
		{name: "huge exponent number", price: `1E5000000`, wantErr: `decimal "1E5000000" is out of range`},
		{name: "exponent within range", price: `"1.25e2"`},
		{name: "zero with huge exponent", price: `"0e5000000"`},
		{name: "not a number", price: `"abc"`, wantErr: `invalid decimal "abc"`},
		{name: "boolean", price: `true`, wantErr: `invalid decimal "true"`},
		{name: "null", price: `null`, wantErr: "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"restaurantId":1,"name":"Es Teh","category":"veg","price":` + tt.price + `}`
			in, err := DecodeMenuItem([]byte(body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, in.Price)
				return
			}
			verr := validationFields(t, err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "price", verr.Fields[0].Field)
			assert.Equal(t, tt.wantErr, verr.Fields[0].Reason)
		})
	}
}

func TestDecodeRequiredFields(t *testing.T) {
	_, err := DecodeOrder([]byte(`{}`))
	verr := validationFields(t, err)
	for _, f := range []string{"restaurantId", "tableId", "items", "total"} {
		assert.True(t, verr.Has(f), "expected %q in %v", f, verr.Fields)
	}
	assert.False(t, verr.Has("customerId"))
	assert.False(t, verr.Has("customerName"))

	_, err = DecodeUser([]byte(`{"username":"budi"}`))
	verr = validationFields(t, err)
	assert.Equal(t, []FieldError{{Field: "password", Reason: "is required"}}, verr.Fields)
}

func TestDecodeUserPasswordLength(t *testing.T) {
	_, err := DecodeUser([]byte(`{"username":"budi","password":"` + strings.Repeat("a", 72) + `"}`))
	require.NoError(t, err)

	_, err = DecodeUser([]byte(`{"username":"budi","password":"` + strings.Repeat("a", 73) + `"}`))
	verr := validationFields(t, err)
	assert.Equal(t, []FieldError{{Field: "password", Reason: "must be at most 72 bytes"}}, verr.Fields)

	// 40 runes, 80 bytes.
	_, err = DecodeUser([]byte(`{"username":"budi","password":"` + strings.Repeat("é", 40) + `"}`))
	verr = validationFields(t, err)
	assert.True(t, verr.Has("password"))
}

func TestDecodeOrderItems(t *testing.T) {
	tests := []struct {
		name  string
		items string
		field string
	}{
		{name: "empty list", items: `[]`, field: "items"},
		{name: "zero quantity", items: `[{"menuItemId":1,"quantity":0,"price":"1"}]`, field: "items[0].quantity"},
		{name: "missing price", items: `[{"menuItemId":1,"quantity":1},{"menuItemId":2,"quantity":1}]`, field: "items[1].price"},
		{name: "bad line price", items: `[{"menuItemId":1,"quantity":1,"price":"1.001"}]`, field: "items[0].price"},
		{name: "unknown line key", items: `[{"menuItemId":1,"quantity":1,"price":"1","note":"pedas"}]`, field: "items[0].note"},
		{name: "line key in other case", items: `[{"menuItemId":1,"quantity":1,"price":"1"},{"MENUITEMID":2,"quantity":1,"price":"1"}]`, field: "items[1].MENUITEMID"},
		{name: "not a list", items: `{"menuItemId":1}`, field: "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"restaurantId":1,"tableId":1,"total":"1","items":` + tt.items + `}`
			_, err := DecodeOrder([]byte(body))
			verr := validationFields(t, err)
			assert.True(t, verr.Has(tt.field), "expected %q in %v", tt.field, verr.Fields)
		})
	}
}

func TestDecodeSessionCustomerInfo(t *testing.T) {
	in, err := DecodeSession([]byte(`{"tableId":3,"customerInfo":null}`))
	require.NoError(t, err)
	assert.Nil(t, in.CustomerInfo)
	assert.Nil(t, in.Model().CustomerInfo)

	_, err = DecodeSession([]byte(`{"tableId":3,"customerInfo":{"email":"not-an-email"}}`))
	verr := validationFields(t, err)
	assert.True(t, verr.Has("customerInfo.email"))

	_, err = DecodeSession([]byte(`{"tableId":3,"customerInfo":{"table":"A1"}}`))
	verr = validationFields(t, err)
	assert.Equal(t, []FieldError{{Field: "customerInfo.table", Reason: "is not allowed"}}, verr.Fields)

	_, err = DecodeSession([]byte(`{"tableId":3,"customerInfo":{"Email":"sari@example.com"}}`))
	verr = validationFields(t, err)
	assert.Equal(t, []FieldError{{Field: "customerInfo.Email", Reason: "is not allowed"}}, verr.Fields)
}

func TestDecodeNestedKeysMatchExactly(t *testing.T) {
	body := `{"restaurantId":1,"tableId":1,"total":"1","items":[{"MenuItemId":1,"Quantity":1,"price":"1"}]}`
	_, err := DecodeOrder([]byte(body))
	verr := validationFields(t, err)
	assert.Equal(t, []FieldError{
		{Field: "items[0].MenuItemId", Reason: "is not allowed"},
		{Field: "items[0].Quantity", Reason: "is not allowed"},
	}, verr.Fields)
}

func TestDecodeWrongTypes(t *testing.T) {
	_, err := DecodeTable([]byte(`{"restaurantId":"one","number":1.5,"capacity":4}`))
	verr := validationFields(t, err)
	assert.True(t, verr.Has("restaurantId"))
	assert.True(t, verr.Has("number"))
	assert.False(t, verr.Has("capacity"))
}

func TestDecodeRejectsNonObjectBodies(t *testing.T) {
	for _, body := range []string{``, `[]`, `"user"`, `{"username":`} {
		_, err := DecodeUser([]byte(body))
		verr := validationFields(t, err)
		assert.Equal(t, "body must be a JSON object", verr.Fields[0].Reason)
	}
}

func TestAllowedFields(t *testing.T) {
	assert.Equal(t, []string{"password", "role", "username"}, AllowedFields(InsertUser{}))
	assert.Equal(t, []string{"description", "name"}, AllowedFields(InsertRestaurant{}))
	assert.Equal(t, []string{"category", "description", "image", "isAvailable", "name", "price", "restaurantId"}, AllowedFields(InsertMenuItem{}))
	assert.Equal(t, []string{"capacity", "number", "restaurantId"}, AllowedFields(&InsertTable{}))
	assert.Equal(t, []string{"customerId", "customerName", "customerPhone", "items", "restaurantId", "tableId", "total"}, AllowedFields(InsertOrder{}))
	assert.Equal(t, []string{"customerInfo", "tableId"}, AllowedFields(InsertSession{}))
}

func TestValidateBuiltValues(t *testing.T) {
	price := models.MustMoney("3.50")
	assert.NoError(t, Validate(InsertMenuItem{RestaurantID: 1, Name: "Es Jeruk", Price: &price, Category: models.CategoryVeg}))

	err := Validate(InsertMenuItem{Name: "Es Jeruk", Category: models.CategoryVeg})
	verr := validationFields(t, err)
	assert.True(t, verr.Has("restaurantId"))
	assert.True(t, verr.Has("price"))

	huge := models.Money{Decimal: decimal.New(1, 5000000)}
	verr = validationFields(t, Validate(InsertMenuItem{RestaurantID: 1, Name: "A", Price: &huge, Category: models.CategoryVeg}))
	assert.Equal(t, []FieldError{{Field: "price", Reason: "must be less than 100000000"}}, verr.Fields)

	tiny := models.Money{Decimal: decimal.New(1, -5000000)}
	verr = validationFields(t, Validate(InsertMenuItem{RestaurantID: 1, Name: "A", Price: &tiny, Category: models.CategoryVeg}))
	assert.Equal(t, []FieldError{{Field: "price", Reason: "must have at most 2 decimal places"}}, verr.Fields)
}
