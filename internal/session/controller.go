package session

import (
	"net/http"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// NormalizeRoleRequest carries the backend's raw role payload. Role is
// left untyped because the backend answers with a string, a prefixed
// string, or an array of authorities depending on endpoint.
type NormalizeRoleRequest struct {
	Role interface{} `json:"role"`
}

type NormalizeRoleResponse struct {
	Role        Role   `json:"role"`
	DefaultPath string `json:"default_path"`
}

// NormalizeRole handles POST /session/normalize-role. The SPA posts the
// login response's role field and gets back the canonical role plus the
// landing path for that role.
func (c *Controller) NormalizeRole(ctx *gin.Context) {
	var req NormalizeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	role := NormalizeRole(req.Role)

	response.Success(ctx, "Role normalized", NormalizeRoleResponse{
		Role:        role,
		DefaultPath: DefaultPathForRole(role),
	})
}
