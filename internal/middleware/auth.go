package middleware

import (
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminMiddleware 校验 Bearer token 且角色为 admin；未配置密钥时拒绝所有请求
func AdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			util.Forbidden(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("jwt parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role != util.RoleAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
