package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
	"github.com/BruksfildServices01/food-ordering/internal/middleware"
	"github.com/BruksfildServices01/food-ordering/internal/realtime"
	ucOrder "github.com/BruksfildServices01/food-ordering/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	placeUC   *ucOrder.PlaceOrder
	mineUC    *ucOrder.ListUserOrders
	allUC     *ucOrder.ListAllOrders
	detailsUC *ucOrder.GetOrderDetails
	statusUC  *ucOrder.UpdateOrderStatus
	hub       *realtime.Hub
}

func NewOrderHandler(
	placeUC *ucOrder.PlaceOrder,
	mineUC *ucOrder.ListUserOrders,
	allUC *ucOrder.ListAllOrders,
	detailsUC *ucOrder.GetOrderDetails,
	statusUC *ucOrder.UpdateOrderStatus,
	hub *realtime.Hub,
) *OrderHandler {
	return &OrderHandler{
		placeUC:   placeUC,
		mineUC:    mineUC,
		allUC:     allUC,
		detailsUC: detailsUC,
		statusUC:  statusUC,
		hub:       hub,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Any price the client sends is ignored.
type PlaceOrderRequest struct {
	Items []struct {
		MenuItemID     uint   `json:"menu_item_id" binding:"required"`
		Quantity       int    `json:"quantity" binding:"gt=0,lte=100"`
		SpecialRequest string `json:"special_request" binding:"max=500"`
	} `json:"items" binding:"min=1,dive"`

	PaymentMethod       string `json:"payment_method"`
	DeliveryAddress     string `json:"delivery_address"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucOrder.PlaceOrderInput{
		UserID:              middleware.Identity(c).SubjectID,
		PaymentMethod:       req.PaymentMethod,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, ucOrder.LineInput{
			MenuItemID:     it.MenuItemID,
			Quantity:       it.Quantity,
			SpecialRequest: it.SpecialRequest,
		})
	}

	res, err := h.placeUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := gin.H{
		"message":      "Order placed successfully",
		"order_id":     res.OrderID,
		"order_number": res.OrderNumber,
		"total_amount": res.TotalAmount,
	}
	if res.PaymentURL != "" {
		body["payment_url"] = res.PaymentURL
	}
	httpresp.Created(c, body)
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.mineUC.Execute(c.Request.Context(), middleware.Identity(c).SubjectID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "orders", orders)
}

// Get serves the owner or any admin.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	details, err := h.detailsUC.Execute(c.Request.Context(), middleware.Identity(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, details)
}

// ======================================================
// ADMIN
// ======================================================

func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.allUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Keyed(c, "orders", orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.statusUC.Execute(c.Request.Context(), middleware.Identity(c).SubjectID, id, req.Status); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Order status updated successfully")
}

// Live upgrades to a websocket that streams order events until the client leaves.
func (h *OrderHandler) Live(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		logging.FromContext(c.Request.Context()).Warn("live feed upgrade failed", "error", err)
	}
}
