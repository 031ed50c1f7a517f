package validator

import (
	"errors"
	"testing"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() entity.CreateOrderForm {
	return entity.CreateOrderForm{
		ProductName:        "Teapot",
		ProductPrice:       decimal.RequireFromString("30.00"),
		Quantity:           1,
		ProductDescription: "white porcelain",
		AdminUserID:        "6650a1f2c3",
		AdminEmail:         "admin@shop.io",
	}
}

func TestValidateCreateOrderForm(t *testing.T) {
	tests := []struct {
		name   string
		modify func(form *entity.CreateOrderForm)

		wantFields FieldErrors
	}{
		{
			name:   "valid form",
			modify: func(*entity.CreateOrderForm) {},
		},
		{
			name: "free product without email",
			modify: func(form *entity.CreateOrderForm) {
				form.ProductPrice = decimal.Zero
				form.AdminEmail = ""
			},
		},
		{
			name: "empty name",
			modify: func(form *entity.CreateOrderForm) {
				form.ProductName = ""
			},

			wantFields: FieldErrors{"productName": "is required"},
		},
		{
			name: "negative price",
			modify: func(form *entity.CreateOrderForm) {
				form.ProductPrice = decimal.RequireFromString("-0.01")
			},

			wantFields: FieldErrors{"productPrice": "must not be less than 0"},
		},
		{
			name: "zero quantity and bad email",
			modify: func(form *entity.CreateOrderForm) {
				form.Quantity = 0
				form.AdminEmail = "admin"
			},

			wantFields: FieldErrors{
				"quantity":   "must be at least 1",
				"adminEmail": "must be a valid email",
			},
		},
		{
			name: "missing description and admin",
			modify: func(form *entity.CreateOrderForm) {
				form.ProductDescription = ""
				form.AdminUserID = ""
			},

			wantFields: FieldErrors{
				"productDescription": "is required",
				"adminUserId":        "is required",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			form := validForm()
			test.modify(&form)

			err := ValidateCreateOrderForm(form)
			if test.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidOrder)

			var fields FieldErrors
			require.True(t, errors.As(err, &fields))
			assert.Equal(t, test.wantFields, fields)
		})
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fields := FieldErrors{
		"quantity":    "must be at least 1",
		"productName": "is required",
	}

	assert.Equal(t, "productName: is required; quantity: must be at least 1", fields.Error())
}
