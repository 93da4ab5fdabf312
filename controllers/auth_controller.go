package controllers

import (
	"net/http"

	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc       *services.AuthService
	UploadDir string
}

func NewAuthController(svc *services.AuthService, uploadDir string) *AuthController {
	return &AuthController{Svc: svc, UploadDir: uploadDir}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "name": u.Name, "email": u.Email,
		"isAdmin": u.IsAdmin, "profilePic": u.ProfilePic,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, userJSON(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userJSON(user),
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}

// POST /auth/me/profile-pic (multipart)
func (a *AuthController) UploadProfilePic(c *gin.Context) {
	file, err := c.FormFile("profile_pic")
	if err != nil {
		resp.BadRequest(c, "no file part")
		return
	}
	filename, err := utils.SaveUpload(c, file, a.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.SetProfilePic(utils.CurrentUserID(c), filename); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"profilePic": filename})
}
