package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public storefront reads.
type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id64), true
}

// GET /products?categoryId=
func (h *CatalogController) ListProducts(c *gin.Context) {
	if v := c.Query("categoryId"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		products, err := h.Svc.ListProductsByCategory(uint(id64))
		if err != nil {
			respondError(c, err)
			return
		}
		resp.OK(c, products)
		return
	}

	products, err := h.Svc.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (h *CatalogController) ProductDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /categories
func (h *CatalogController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cats)
}
