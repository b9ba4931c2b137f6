package view

import (
	"fmt"
	"math"

	"github.com/idilsaglam/packlist/internal/model"
)

// Stats summarises packing progress.
type Stats struct {
	Total      int `json:"total"`
	Packed     int `json:"packed"`
	Percentage int `json:"percentage"`
}

// Compute counts packed items. Percentage is only meaningful when Total > 0 and
// is left at zero otherwise.
func Compute(items []model.Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			s.Packed++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Packed) / float64(s.Total) * 100))
	}
	return s
}

// Empty reports whether there is nothing on the list.
func (s Stats) Empty() bool { return s.Total == 0 }

// Complete reports whether the rounded percentage of a non-empty list reached 100.
// 999 of 1000 packed already counts.
func (s Stats) Complete() bool { return s.Total > 0 && s.Percentage == 100 }

// Message is the footer line for the current progress.
func (s Stats) Message() string {
	switch {
	case s.Empty():
		return "Start adding some items to your packing list 🚀"
	case s.Complete():
		return "You have everything for your future journey! ✈️"
	}
	return fmt.Sprintf("You have %d %s on your list, and you already packed %d (%d%%)",
		s.Total, plural(s.Total, "item", "items"), s.Packed, s.Percentage)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
