package rbac

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Permissions lists what the caller's role may do.
func (h *Handler) Permissions(c *gin.Context) {
	resp, err := h.service.PermissionsFor(c.GetString("role"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
