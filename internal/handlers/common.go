package handlers

import (
	"errors"
	"strconv"

	"github.com/lasoundguy/household-tracker/internal/services"
	"github.com/lasoundguy/household-tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError 将服务层的错误类别映射为 HTTP 状态码。
// 未识别的错误只在服务端记录，对外统一返回 500。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		utils.Error(c, 400, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.Conflict(c, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected service error")
		utils.InternalError(c)
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, 400, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	return userID.(uint)
}
