package models

import (
	"math"
	"testing"
)

func TestCreateOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateOrderRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: 2},
			wantErr: false,
		},
		{
			name:    "missing user name",
			req:     &CreateOrderRequest{UserName: "", MenuID: 1, Quantity: 2},
			wantErr: true,
		},
		{
			name:    "zero menu id",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 0, Quantity: 2},
			wantErr: true,
		},
		{
			name:    "negative menu id",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: -5, Quantity: 2},
			wantErr: true,
		},
		{
			name:    "zero quantity",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: 0},
			wantErr: true,
		},
		{
			name:    "negative quantity",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: -1},
			wantErr: true,
		},
		{
			name:    "quantity at the cap",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: MaxOrderQuantity},
			wantErr: false,
		},
		{
			name:    "quantity above the cap",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: MaxOrderQuantity + 1},
			wantErr: true,
		},
		{
			name:    "quantity beyond int32 range",
			req:     &CreateOrderRequest{UserName: "Alice", MenuID: 1, Quantity: 3000000000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int
		want     int64
		wantErr  bool
	}{
		{name: "simple total", price: 500, quantity: 2, want: 1000},
		{name: "single unit", price: 700, quantity: 1, want: 700},
		{name: "overflow rejected", price: math.MaxInt64 / 2, quantity: 3, wantErr: true},
		{name: "max exact product allowed", price: math.MaxInt64, quantity: 1, want: math.MaxInt64},
		{name: "zero price rejected", price: 0, quantity: 1, wantErr: true},
		{name: "zero quantity rejected", price: 500, quantity: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotalPrice(tt.price, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeTotalPrice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ComputeTotalPrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatal("default catalog must not be empty")
	}
	for _, draft := range catalog {
		if draft.Name == "" {
			t.Error("default catalog entry has empty name")
		}
		if draft.Price <= 0 {
			t.Errorf("default catalog entry %q has non-positive price %d", draft.Name, draft.Price)
		}
	}
}
