package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/transport/api/tokens"
)

type UsersHandler struct {
	userService  UserServicer
	graphService GraphServicer
	jwtSecretKey []byte
}

func NewUsersHandler(userService UserServicer, graphService GraphServicer, jwtSecretKey []byte) *UsersHandler {
	return &UsersHandler{
		userService:  userService,
		graphService: graphService,
		jwtSecretKey: jwtSecretKey,
	}
}

type UserRegisterParams struct {
	Username   string `binding:"required,min=1,max=30" form:"login"      json:"login"`
	ReferrerID *int64 `binding:"omitempty,min=1"       form:"referrerID" json:"referrerID"`
}

type UserResponse struct {
	ID             int64     `json:"ID"`
	Username       string    `json:"login"`
	ReferredBy     *int64    `json:"referredBy,omitempty"`
	TotalSales     float64   `json:"totalSales"`
	CommissionSlab float64   `json:"commissionSlab"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		ReferredBy:     user.ReferredBy,
		TotalSales:     user.TotalSales.InexactFloat64(),
		CommissionSlab: user.CommissionSlab.InexactFloat64(),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// Register POST RouteGroup + RegisterRoute. Регистрирует продавца, опционально сразу привязывая его
// к пригласившему, и аутентифицирует его.
func (h *UsersHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, createErr := h.userService.Create(ctx, params.Username, params.ReferrerID)
	if createErr != nil {
		var valErr *domain.ValidationError
		switch {
		case errors.Is(createErr, domain.ErrDuplicateKey):
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this login already exists")).
				SetType(gin.ErrorTypePublic)
		case errors.As(createErr, &valErr):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	jwtToken, tokenErr := tokens.GenerateUserJWT(user.ID, DefaultTokenTTL, h.jwtSecretKey)
	if tokenErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, tokenErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type BindReferrerParams struct {
	ReferrerID int64 `binding:"required,min=1" json:"referrerID"`
}

// BindReferrer POST RouteGroup + ReferralsRoute. Привязывает текущего юзера к пригласившему.
// Привязка однократная: повторный вызов вернет 409.
func (h *UsersHandler) BindReferrer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params BindReferrerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.graphService.RegisterReferral(ctx, currentUserID, params.ReferrerID); err != nil {
		var valErr *domain.ValidationError
		var cycleErr *domain.CycleDetectedError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("referrer not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrConflict):
			_ = c.AbortWithError(http.StatusConflict, errors.New("referrer already set")).
				SetType(gin.ErrorTypePublic)
		case errors.As(err, &cycleErr):
			_ = c.AbortWithError(http.StatusConflict, cycleErr).SetType(gin.ErrorTypePublic)
		case errors.As(err, &valErr):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
