package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminController is the back-office: catalog management, order
// management and the dashboard. Every route behind it requires the
// admin role.
type AdminController struct {
	Catalog   *services.CatalogService
	Orders    *services.OrderService
	UploadDir string
}

func NewAdminController(catalog *services.CatalogService, orders *services.OrderService, uploadDir string) *AdminController {
	return &AdminController{Catalog: catalog, Orders: orders, UploadDir: uploadDir}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	counts, err := h.Orders.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, counts)
}

// ---------------- Categories ----------------

// GET /admin/categories
func (h *AdminController) Categories(c *gin.Context) {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Catalog.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Products ----------------

// GET /admin/products
func (h *AdminController) Products(c *gin.Context) {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, products)
}

// productForm reads the multipart product form shared by create and
// edit. The image is optional; a missing file keeps the default or the
// existing one.
func (h *AdminController) productForm(c *gin.Context) (*services.ProductIn, bool) {
	name := c.PostForm("name")
	priceStr := c.PostForm("price")
	categoryStr := c.PostForm("category_id")
	if name == "" || priceStr == "" || categoryStr == "" {
		resp.BadRequest(c, "name, price and category_id are required")
		return nil, false
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return nil, false
	}
	categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category_id")
		return nil, false
	}

	in := &services.ProductIn{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		CategoryID:  uint(categoryID),
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUpload(c, file, h.UploadDir)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return nil, false
		}
		in.ImageFile = filename
	}
	return in, true
}

// POST /admin/products (multipart)
func (h *AdminController) CreateProduct(c *gin.Context) {
	in, ok := h.productForm(c)
	if !ok {
		return
	}
	p, err := h.Catalog.CreateProduct(in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id (multipart)
func (h *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	in, ok := h.productForm(c)
	if !ok {
		return
	}
	p, err := h.Catalog.UpdateProduct(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (h *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Orders ----------------

// GET /admin/orders
func (h *AdminController) OrdersList(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders/:id
func (h *AdminController) OrderDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Detail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Orders.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}
