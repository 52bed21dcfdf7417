package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/storage"
	"github.com/BruksfildServices01/food-ordering/internal/validators"
)

// --------------------------------------------------
// Request parsing
// --------------------------------------------------

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id")
		return 0, false
	}
	return uint(v), true
}

// bindJSON decodes the body and applies its binding tags. Rule failures
// answer with their own code, malformed bodies with invalid_request.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		rejectBody(c, err)
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body and leaves dst untouched.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		rejectBody(c, err)
		return false
	}
	return true
}

func rejectBody(c *gin.Context, err error) {
	if validators.IsValidation(err) {
		httperr.Respond(c, validators.Translate(err))
		return
	}
	httperr.BadRequest(c, "invalid_request", "Invalid request body")
}

func queryUint(c *gin.Context, key string) (*uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Invalid "+key)
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func queryBool(c *gin.Context, key string) *bool {
	switch c.Query(key) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

// --------------------------------------------------
// Uploads
// --------------------------------------------------

// imageUpload opens the multipart "image" field. The caller closes the file.
func imageUpload(c *gin.Context) (multipart.File, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Image file is required")
		return nil, false
	}
	if fh.Size > storage.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 5MB or smaller")
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "image_unreadable", "Could not read image")
		return nil, false
	}
	return f, true
}

func saveImage(c *gin.Context, images *storage.Images, folder string) (string, bool) {
	f, ok := imageUpload(c)
	if !ok {
		return "", false
	}
	defer f.Close()

	url, err := images.Save(c.Request.Context(), folder, f)
	if errors.Is(err, storage.ErrNotImage) {
		httperr.BadRequest(c, "invalid_image", "Unsupported image format")
		return "", false
	}
	if err != nil {
		httperr.Respond(c, err)
		return "", false
	}
	return url, true
}

// --------------------------------------------------
// Session cookie
// --------------------------------------------------

type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (s SessionCookie) set(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, sessionID, int(s.TTL.Seconds()), "/", "", s.Secure, true)
}

func (s SessionCookie) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}
