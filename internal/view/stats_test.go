package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/packlist/internal/model"
)

func packed(total, done int) []model.Item {
	out := make([]model.Item, total)
	for i := range out {
		out[i] = model.Item{Description: "x", Quantity: 1, Packed: i < done}
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		done     int
		wantPct  int
		complete bool
		empty    bool
	}{
		{"empty", 0, 0, 0, false, true},
		{"none packed", 3, 0, 0, false, false},
		{"quarter", 4, 1, 25, false, false},
		{"half", 2, 1, 50, false, false},
		{"third rounds down", 3, 1, 33, false, false},
		{"two thirds rounds up", 3, 2, 67, false, false},
		{"all packed", 3, 3, 100, true, false},
		{"nearly all rounds to 100", 1000, 999, 100, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(packed(tt.total, tt.done))
			assert.Equal(t, tt.total, s.Total)
			assert.Equal(t, tt.done, s.Packed)
			assert.Equal(t, tt.wantPct, s.Percentage)
			assert.Equal(t, tt.complete, s.Complete())
			assert.Equal(t, tt.empty, s.Empty())
		})
	}
}

func TestStats_Message(t *testing.T) {
	assert.Equal(t, "Start adding some items to your packing list 🚀", Compute(nil).Message())
	assert.Equal(t, "You have everything for your future journey! ✈️", Compute(packed(3, 3)).Message())
	assert.Equal(t, "You have 4 items on your list, and you already packed 1 (25%)", Compute(packed(4, 1)).Message())
	assert.Equal(t, "You have 1 item on your list, and you already packed 0 (0%)", Compute(packed(1, 0)).Message())
	assert.NotContains(t, Compute(nil).Message(), "NaN")
	assert.Equal(t, "You have everything for your future journey! ✈️", Compute(packed(200, 199)).Message())
}
