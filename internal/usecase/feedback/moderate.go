package feedback

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/feedback"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

var ErrFeedbackNotFound = httperr.NotFoundf("feedback_not_found", "Feedback not found")

// ======================================================
// APPROVE / REJECT
// ======================================================

type ModerateFeedback struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModerateFeedback(repo domain.Repository, audit *audit.Dispatcher) *ModerateFeedback {
	return &ModerateFeedback{repo: repo, audit: audit}
}

func (uc *ModerateFeedback) Execute(
	ctx context.Context,
	adminID uint,
	feedbackID uint,
	approved bool,
) error {

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		f, err := tx.Get(ctx, feedbackID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.SetApproved(ctx, f.ID, approved); err != nil {
			return err
		}

		if f.MenuItemID == nil {
			return nil
		}
		return recompute(ctx, tx, *f.MenuItemID)
	})
	if err != nil {
		return err
	}

	action := "feedback_approved"
	if !approved {
		action = "feedback_rejected"
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: "admin",
		Action:    action,
		Entity:    "feedback",
		EntityID:  &feedbackID,
	})

	return nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteFeedback struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteFeedback(repo domain.Repository, audit *audit.Dispatcher) *DeleteFeedback {
	return &DeleteFeedback{repo: repo, audit: audit}
}

func (uc *DeleteFeedback) Execute(
	ctx context.Context,
	adminID uint,
	feedbackID uint,
) error {

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		f, err := tx.Get(ctx, feedbackID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(ctx, f.ID); err != nil {
			return err
		}

		if f.MenuItemID == nil {
			return nil
		}
		return recompute(ctx, tx, *f.MenuItemID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: "admin",
		Action:    "feedback_deleted",
		Entity:    "feedback",
		EntityID:  &feedbackID,
	})

	return nil
}

// recompute rebuilds the item's rollup from its approved feedback.
func recompute(ctx context.Context, tx domain.Repository, menuItemID uint) error {
	ratings, err := tx.ApprovedRatings(ctx, menuItemID)
	if err != nil {
		return err
	}

	summary := domain.Summarize(menuItemID, ratings)
	return tx.SaveSummary(ctx, &summary)
}
