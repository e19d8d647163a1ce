package handler

import (
	"net/http"

	"github.com/plnalaca/pera/internal/adapter/http/dto"
	"github.com/plnalaca/pera/internal/core/domain"
	"github.com/plnalaca/pera/internal/core/ports"
	"github.com/plnalaca/pera/pkg/apperror"
	"github.com/plnalaca/pera/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user registration and lookup endpoints.
type UserHandler struct {
	userSvc ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser handles POST /create_user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.userSvc.Register(c.Request.Context(), ports.RegisterUserRequest{
		Name:       req.Name,
		Surname:    req.Surname,
		WalletCode: req.PublicKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateUserResponse{
		Message: "User created successfully",
		User: dto.UserPayload{
			Name:      result.Name,
			Surname:   result.Surname,
			Token:     result.Token,
			PublicKey: result.WalletCode,
		},
	})
}

// CheckUser handles GET /check_user?public_key=...
// Missing users and malformed keys are soft outcomes: still 200, with
// the status field telling them apart.
func (h *UserHandler) CheckUser(c *gin.Context) {
	publicKey, ok := c.GetQuery("public_key")
	if !ok {
		response.Error(c, apperror.Validation("public_key query parameter is required"))
		return
	}

	result, err := h.userSvc.Check(c.Request.Context(), publicKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.CheckUserResponse{Status: string(result.Status)}
	if result.Status == domain.StatusSuccess {
		resp.Name = &result.Name
		resp.Surname = &result.Surname
		resp.Token = &result.Token
	}
	c.JSON(http.StatusOK, resp)
}
