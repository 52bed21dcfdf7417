package feedback

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/feedback"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
)

const itemFeedbackLimit = 50

type ItemFeedback struct {
	Feedback      []dto.ReviewDTO      `json:"feedback"`
	RatingSummary dto.RatingSummaryDTO `json:"rating_summary"`
}

// ListFeedback serves the read side: public item reviews, the caller's own
// feedback, the admin queue and the orders still open for review.
type ListFeedback struct {
	repo domain.Repository
}

func NewListFeedback(repo domain.Repository) *ListFeedback {
	return &ListFeedback{repo: repo}
}

func (uc *ListFeedback) ForItem(ctx context.Context, menuItemID uint) (*ItemFeedback, error) {
	reviews, err := uc.repo.ListApprovedForItem(ctx, menuItemID, itemFeedbackLimit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []dto.ReviewDTO{}
	}

	out := &ItemFeedback{
		Feedback:      reviews,
		RatingSummary: dto.RatingSummaryDTO{AverageRating: decimal.Zero},
	}

	s, err := uc.repo.GetSummary(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		out.RatingSummary = dto.RatingSummaryDTO{
			AverageRating: s.AverageRating,
			TotalRatings:  s.TotalRatings,
			Rating1Count:  s.Rating1Count,
			Rating2Count:  s.Rating2Count,
			Rating3Count:  s.Rating3Count,
			Rating4Count:  s.Rating4Count,
			Rating5Count:  s.Rating5Count,
		}
	}

	return out, nil
}

func (uc *ListFeedback) Mine(ctx context.Context, userID uint) ([]dto.FeedbackListDTO, error) {
	return uc.repo.ListForUser(ctx, userID)
}

func (uc *ListFeedback) All(ctx context.Context, approvedOnly bool) ([]dto.FeedbackListDTO, error) {
	return uc.repo.ListAll(ctx, approvedOnly)
}

func (uc *ListFeedback) EligibleOrders(ctx context.Context, userID uint) ([]dto.EligibleOrderDTO, error) {
	return uc.repo.ListEligibleOrders(ctx, userID)
}
