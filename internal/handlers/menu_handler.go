package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/catalog"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/middleware"
	"github.com/BruksfildServices01/food-ordering/internal/storage"
	"github.com/BruksfildServices01/food-ordering/internal/usecase/catalog"
)

// MenuHandler is the admin side of the catalog.
type MenuHandler struct {
	categories *catalog.Categories
	items      *catalog.MenuItems
	images     *storage.Images
}

func NewMenuHandler(
	categories *catalog.Categories,
	items *catalog.MenuItems,
	images *storage.Images,
) *MenuHandler {
	return &MenuHandler{categories: categories, items: items, images: images}
}

// --------- Categories ---------

func (h *MenuHandler) ListCategories(c *gin.Context) {
	cats, err := h.categories.ListAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "categories", cats)
}

func (h *MenuHandler) GetCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cat, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"category": cat})
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req catalog.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Create(c.Request.Context(), middleware.Identity(c).SubjectID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, gin.H{
		"message":     "Category created successfully",
		"category_id": cat.ID,
	})
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req catalog.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.categories.Update(c.Request.Context(), middleware.Identity(c).SubjectID, id, req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Category updated successfully")
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), middleware.Identity(c).SubjectID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Category deleted successfully")
}

func (h *MenuHandler) UploadCategoryImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.categories.Get(ctx, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	url, ok := saveImage(c, h.images, "categories")
	if !ok {
		return
	}

	if _, err := h.categories.SetImage(ctx, middleware.Identity(c).SubjectID, id, url); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"message":   "Image uploaded successfully",
		"image_url": url,
	})
}

// --------- Menu items ---------

func (h *MenuHandler) ListItems(c *gin.Context) {
	categoryID, ok := queryUint(c, "category_id")
	if !ok {
		return
	}

	items, err := h.items.ListAdmin(c.Request.Context(), domain.MenuFilter{
		CategoryID: categoryID,
		Available:  queryBool(c, "is_available"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "menu_items", items)
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"menu_item": item})
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req catalog.MenuItemInput
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.items.Create(c.Request.Context(), middleware.Identity(c).SubjectID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, gin.H{
		"message": "Menu item created successfully",
		"item_id": item.ID,
	})
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req catalog.MenuItemInput
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.items.Update(c.Request.Context(), middleware.Identity(c).SubjectID, id, req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Menu item updated successfully")
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), middleware.Identity(c).SubjectID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Menu item deleted successfully")
}

func (h *MenuHandler) UploadItemImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.items.Get(ctx, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	url, ok := saveImage(c, h.images, "menu-items")
	if !ok {
		return
	}

	if _, err := h.items.SetImage(ctx, middleware.Identity(c).SubjectID, id, url); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"message":   "Image uploaded successfully",
		"image_url": url,
	})
}
