package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// The admin backend expects prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderResponse struct {
	ID           *string          `json:"_id,omitempty"`
	ProductName  *string          `json:"productName,omitempty"`
	ProductPrice *decimal.Decimal `json:"productPrice,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	ProductImage *string          `json:"productImage,omitempty"`
	Status       *string          `json:"status,omitempty"`
	CreatedAt    *string          `json:"createdAt,omitempty"`
}

type OrderResponses []OrderResponse

// UnmarshalJSON drops records that can't be decoded so one broken order
// doesn't hide the rest of the list.
func (r *OrderResponses) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	responses := make(OrderResponses, 0, len(raws))
	for i, raw := range raws {
		var record orderRecord
		err := json.Unmarshal(raw, &record)
		if err == nil {
			err = record.resolve()
		}
		if err != nil {
			zap.L().Warn("skipping undecodable order record", zap.Int("index", i), zap.Error(err))
			continue
		}

		responses = append(responses, record.OrderResponse)
	}

	*r = responses

	return nil
}

// orderRecord accepts quantity both as a JSON number and as numeric text.
type orderRecord struct {
	OrderResponse

	RawQuantity json.RawMessage `json:"quantity,omitempty"`
}

func (r *orderRecord) resolve() error {
	quantity, err := parseQuantity(r.RawQuantity)
	if err != nil {
		return err
	}
	r.OrderResponse.Quantity = quantity

	return nil
}

func parseQuantity(raw json.RawMessage) (*int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, err
		}
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %s: %w", raw, err)
	}

	return &quantity, nil
}

// UpdateOrderResponse accepts both a bare order and one wrapped into "data" or "order".
type UpdateOrderResponse struct {
	OrderResponse

	Data  *OrderResponse `json:"data,omitempty"`
	Order *OrderResponse `json:"order,omitempty"`
}

func (r *UpdateOrderResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		orderRecord

		Data  *orderRecord `json:"data,omitempty"`
		Order *orderRecord `json:"order,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if err := aux.resolve(); err != nil {
		return err
	}
	*r = UpdateOrderResponse{OrderResponse: aux.OrderResponse}

	if aux.Data != nil {
		if err := aux.Data.resolve(); err != nil {
			return err
		}
		r.Data = &aux.Data.OrderResponse
	}
	if aux.Order != nil {
		if err := aux.Order.resolve(); err != nil {
			return err
		}
		r.Order = &aux.Order.OrderResponse
	}

	return nil
}

func (r UpdateOrderResponse) Unwrap() OrderResponse {
	if r.Data != nil {
		return *r.Data
	}
	if r.Order != nil {
		return *r.Order
	}

	return r.OrderResponse
}

type UpdateOrderRequest struct {
	ProductName  *string          `json:"productName,omitempty"`
	ProductPrice *decimal.Decimal `json:"productPrice,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	ProductImage *string          `json:"productImage,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

type DeleteOrderRequest struct {
	ID string `json:"id"`
}

type CreateOrderRequest struct {
	ProductName        string          `json:"productName"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	Quantity           int             `json:"quantity"`
	ProductDescription string          `json:"productDescription"`
	ProductImage       *string         `json:"productImage"`
	AdminUserID        string          `json:"adminUserId"`
	AdminEmail         string          `json:"adminEmail"`
}

type CreateOrderResponse = UpdateOrderResponse
