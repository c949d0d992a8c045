package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/salon-next/internal/http/handlers/shared"
	"github.com/salon-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.RequireAdminID(c)
}

// pathID 读取路径中的字符串 ID
func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return "", false
	}
	return id, true
}

// pathUintID 读取路径中的数值 ID
func pathUintID(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || parsed == 0 {
		respondError(c, response.CodeBadRequest, "error.id_invalid", err)
		return 0, false
	}
	return uint(parsed), true
}
