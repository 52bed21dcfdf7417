package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/middleware"
	"github.com/BruksfildServices01/food-ordering/internal/storage"
	"github.com/BruksfildServices01/food-ordering/internal/usecase/account"
)

// MeHandler serves the caller's own profile, customer or staff.
type MeHandler struct {
	accounts *account.Service
	images   *storage.Images
}

func NewMeHandler(accounts *account.Service, images *storage.Images) *MeHandler {
	return &MeHandler{accounts: accounts, images: images}
}

func (h *MeHandler) UserProfile(c *gin.Context) {
	id := middleware.Identity(c)

	u, err := h.accounts.UserProfile(c.Request.Context(), id.SubjectID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": u})
}

func (h *MeHandler) UpdateUserProfile(c *gin.Context) {
	id := middleware.Identity(c)

	var req account.UserProfileInput
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.accounts.UpdateUserProfile(c.Request.Context(), id.SubjectID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

func (h *MeHandler) UploadUserImage(c *gin.Context) {
	id := middleware.Identity(c)

	url, ok := saveImage(c, h.images, "profiles")
	if !ok {
		return
	}

	if _, err := h.accounts.UpdateUserProfile(c.Request.Context(), id.SubjectID, account.UserProfileInput{
		ProfileImage: &url,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"message":       "Profile image updated successfully",
		"profile_image": url,
	})
}

func (h *MeHandler) AdminProfile(c *gin.Context) {
	id := middleware.Identity(c)

	a, err := h.accounts.AdminProfile(c.Request.Context(), id.SubjectID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"admin": a})
}

func (h *MeHandler) UpdateAdminProfile(c *gin.Context) {
	id := middleware.Identity(c)

	var req account.AdminProfileInput
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.accounts.UpdateAdminProfile(c.Request.Context(), id.SubjectID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"message": "Profile updated successfully",
		"admin":   a,
	})
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req account.ChangePasswordInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accounts.ChangePassword(c.Request.Context(), middleware.Identity(c), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Password changed successfully")
}
