package gateway

import (
	"net/http"

	"github.com/example/artshop/pkg/security"
	"github.com/example/artshop/pkg/service"
	"github.com/gin-gonic/gin"
)

// apiResponse is the envelope of the auth endpoints.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (g *Gateway) authError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		g.abortWithError(c, err)
		return
	}
	c.AbortWithStatusJSON(code, apiResponse{Success: false, Message: msg})
}

// register godoc
// @Summary  Register a local account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request  body      service.RegisterRequest  true  "Account"
// @Success  201      {object}  apiResponse
// @Failure  400      {object}  apiResponse
// @Router   /auth/register [post]
func (g *Gateway) register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Message: "Invalid request body"})
		return
	}

	resp, err := g.services.Auth.Register(c.Request.Context(), req)
	if err != nil {
		g.authError(c, err)
		return
	}
	c.JSON(http.StatusCreated, apiResponse{Success: true, Message: "Account created successfully", Data: resp})
}

// login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request  body      service.LoginRequest  true  "Credentials"
// @Success  200      {object}  apiResponse
// @Failure  401      {object}  apiResponse
// @Router   /auth/login [post]
func (g *Gateway) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Message: "Invalid request body"})
		return
	}

	resp, err := g.services.Auth.Login(c.Request.Context(), req)
	if err != nil {
		g.authError(c, err)
		return
	}
	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Login successful", Data: resp})
}

// Tokens are stateless, so logout only acknowledges.
func (g *Gateway) logout(c *gin.Context) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Logged out successfully"})
}

// currentUser godoc
// @Summary   Account of the bearer token
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  apiResponse
// @Failure   401  {object}  apiResponse
// @Router    /auth/me [get]
func (g *Gateway) currentUser(c *gin.Context) {
	token := security.ExtractBearer(c.GetHeader("Authorization"))
	resp, err := g.services.Auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		g.authError(c, err)
		return
	}
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: resp})
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// adminLogin godoc
// @Summary  Log in as an admin
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    request  body      adminLoginRequest  true  "Credentials"
// @Success  200      {object}  service.AdminLoginResponse
// @Failure  401      {object}  errorResponse
// @Router   /admin/login [post]
func (g *Gateway) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := g.services.Admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
