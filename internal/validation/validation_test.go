package validation_test

import (
	"testing"

	"github.com/TaylenH/apiDirectory/internal/models"
	"github.com/TaylenH/apiDirectory/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestProductID(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want error
	}{
		{"zero id is missing", 0, models.ErrProductIDMissing},
		{"negative id is invalid", -1, models.ErrInvalidProductID},
		{"large negative id is invalid", -9999, models.ErrInvalidProductID},
		{"one is valid", 1, nil},
		{"large id is valid", 123456, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ProductID(tt.id)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestProductName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"accepts cheese", "cheese", false},
		{"accepts minimum length", "abc", false},
		{"accepts maximum length", "abcdefghijklmnopqrstuvwx", false},
		{"accepts digits hyphens spaces", "Deep-Dish Pizza 12", false},
		{"rejects empty", "", true},
		{"rejects too short", "ab", true},
		{"rejects too long", "abcdefghijklmnopqrstuvwxy", true},
		{"rejects underscore", "mac_and_cheese", true},
		{"rejects punctuation", "pizza!", true},
		{"rejects unicode letters", "piñata", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ProductName(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidProductName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"accepts lower bound", 0.01, false},
		{"accepts upper bound", 9999, false},
		{"accepts typical price", 5.99, false},
		{"rejects zero", 0, true},
		{"rejects negative", -1, true},
		{"rejects above upper bound", 10000, true},
		{"rejects just below lower bound", 0.009, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Price(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidPrice)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStock(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"accepts zero", 0, false},
		{"accepts upper bound", 9999, false},
		{"accepts typical stock", 55, false},
		{"rejects negative", -1, true},
		{"rejects above upper bound", 10000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Stock(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidStock)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
