package feedback

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return httperr.Validation("invalid_rating", "Rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// Summarize rebuilds an item's rollup from the ratings of its approved
// feedback. Out-of-range ratings are ignored.
func Summarize(menuItemID uint, ratings []int) models.MenuItemRating {
	s := models.MenuItemRating{MenuItemID: menuItemID, AverageRating: decimal.Zero}

	sum := 0
	for _, r := range ratings {
		switch r {
		case 1:
			s.Rating1Count++
		case 2:
			s.Rating2Count++
		case 3:
			s.Rating3Count++
		case 4:
			s.Rating4Count++
		case 5:
			s.Rating5Count++
		default:
			continue
		}
		s.TotalRatings++
		sum += r
	}

	if s.TotalRatings > 0 {
		s.AverageRating = decimal.NewFromInt(int64(sum)).
			DivRound(decimal.NewFromInt(int64(s.TotalRatings)), 2)
	}
	return s
}
