package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableQuantity(t *testing.T) {
	tt := TicketType{QuantityTotal: 10, QuantitySold: 4}
	assert.Equal(t, 6, tt.AvailableQuantity())

	tt.QuantitySold = 10
	assert.Equal(t, 0, tt.AvailableQuantity())

	// Oversold rows never report negative availability.
	tt.QuantitySold = 12
	assert.Equal(t, 0, tt.AvailableQuantity())
}

func TestIsAvailable(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	t.Run("active with stock and no window", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10}
		assert.True(t, tt.IsAvailable())
	})

	t.Run("inactive", func(t *testing.T) {
		tt := TicketType{IsActive: false, QuantityTotal: 10}
		assert.False(t, tt.IsAvailable())
	})

	t.Run("sold out", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10, QuantitySold: 10}
		assert.False(t, tt.IsAvailable())
	})

	t.Run("sales not started", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10, SalesStart: &future}
		assert.False(t, tt.IsAvailable())
	})

	t.Run("sales ended", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10, SalesEnd: &past}
		assert.False(t, tt.IsAvailable())
	})

	t.Run("inside sales window", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10, SalesStart: &past, SalesEnd: &future}
		assert.True(t, tt.IsAvailable())
	})

	t.Run("repeated reads agree", func(t *testing.T) {
		tt := TicketType{IsActive: true, QuantityTotal: 10, QuantitySold: 9}
		first := tt.IsAvailable()
		assert.Equal(t, first, tt.IsAvailable())
	})
}
