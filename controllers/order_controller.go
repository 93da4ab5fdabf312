package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// OrderController covers the customer side: checkout and order history.
type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	order, err := h.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) DetailMine(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}
