package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/middleware"
	ucFeedback "github.com/BruksfildServices01/food-ordering/internal/usecase/feedback"
)

type FeedbackHandler struct {
	submitUC   *ucFeedback.SubmitFeedback
	moderateUC *ucFeedback.ModerateFeedback
	deleteUC   *ucFeedback.DeleteFeedback
	listUC     *ucFeedback.ListFeedback
}

func NewFeedbackHandler(
	submitUC *ucFeedback.SubmitFeedback,
	moderateUC *ucFeedback.ModerateFeedback,
	deleteUC *ucFeedback.DeleteFeedback,
	listUC *ucFeedback.ListFeedback,
) *FeedbackHandler {
	return &FeedbackHandler{
		submitUC:   submitUC,
		moderateUC: moderateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type SubmitFeedbackRequest struct {
	OrderID    uint   `json:"order_id" binding:"required"`
	MenuItemID *uint  `json:"menu_item_id" binding:"omitempty,gt=0"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"max=2000"`
}

type ApproveFeedbackRequest struct {
	IsApproved *bool `json:"is_approved"`
}

// --------- Customer ---------

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	f, err := h.submitUC.Execute(c.Request.Context(), ucFeedback.SubmitFeedbackInput{
		UserID:     middleware.Identity(c).SubjectID,
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "Feedback submitted successfully. It will be visible after admin approval.",
		"feedback_id": f.ID,
	})
}

func (h *FeedbackHandler) Mine(c *gin.Context) {
	list, err := h.listUC.Mine(c.Request.Context(), middleware.Identity(c).SubjectID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "feedback", list)
}

func (h *FeedbackHandler) EligibleOrders(c *gin.Context) {
	orders, err := h.listUC.EligibleOrders(c.Request.Context(), middleware.Identity(c).SubjectID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "orders", orders)
}

// --------- Public ---------

func (h *FeedbackHandler) ForMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.listUC.ForItem(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// --------- Admin ---------

func (h *FeedbackHandler) All(c *gin.Context) {
	list, err := h.listUC.All(c.Request.Context(), c.Query("approved") == "true")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "feedback", list)
}

// Approve sets is_approved, true when the body omits it.
func (h *FeedbackHandler) Approve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ApproveFeedbackRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	approved := req.IsApproved == nil || *req.IsApproved

	if err := h.moderateUC.Execute(c.Request.Context(), middleware.Identity(c).SubjectID, id, approved); err != nil {
		httperr.Respond(c, err)
		return
	}

	msg := "Feedback approved successfully"
	if !approved {
		msg = "Feedback rejected successfully"
	}
	httpresp.Message(c, msg)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), middleware.Identity(c).SubjectID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Feedback deleted successfully")
}
