package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /cart/count (header badge)
func (h *CartController) Count(c *gin.Context) {
	count, err := h.Svc.Count(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count})
}

type addToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.ProductID})
}

type adjustCartRequest struct {
	Action string `json:"action" binding:"required,oneof=increase decrease remove"`
}

// POST /cart/items/:id/adjust
func (h *CartController) Adjust(c *gin.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req adjustCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Adjust(utils.CurrentUserID(c), itemID, req.Action); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"adjusted": itemID})
}
