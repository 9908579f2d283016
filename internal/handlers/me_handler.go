package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dudhwalekaran/voltvault-sub000/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe echoes the verified principal. There is no user table here;
// identity lives entirely in the token.
func (h *MeHandler) GetMe(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    principal.UserID,
			"name":  principal.Name,
			"email": principal.Email,
			"role":  string(principal.Role),
		},
	})
}
