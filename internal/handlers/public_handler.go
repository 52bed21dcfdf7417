package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/catalog"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/usecase/catalog"
)

// PublicHandler serves the storefront reads that need no login.
type PublicHandler struct {
	categories *catalog.Categories
	items      *catalog.MenuItems
}

func NewPublicHandler(categories *catalog.Categories, items *catalog.MenuItems) *PublicHandler {
	return &PublicHandler{categories: categories, items: items}
}

func (h *PublicHandler) Categories(c *gin.Context) {
	cats, err := h.categories.ListActive(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "categories", cats)
}

func (h *PublicHandler) Menu(c *gin.Context) {
	categoryID, ok := queryUint(c, "category_id")
	if !ok {
		return
	}

	items, err := h.items.ListPublic(c.Request.Context(), domain.MenuFilter{
		CategoryID:   categoryID,
		FeaturedOnly: c.Query("featured") == "true",
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "menu_items", items)
}

func (h *PublicHandler) MenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.items.Detail(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"item":    detail.MenuItemDTO,
		"reviews": detail.Reviews,
	})
}
