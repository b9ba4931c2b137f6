package model

// Quantity bounds offered by the add form.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Item is one entry on the packing list.
// Only Packed changes after creation.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// QuantityOptions lists every selectable quantity in ascending order.
func QuantityOptions() []int {
	out := make([]int, 0, MaxQuantity-MinQuantity+1)
	for q := MinQuantity; q <= MaxQuantity; q++ {
		out = append(out, q)
	}
	return out
}
