package middleware

import (
	"clubtix/config"

	"github.com/gin-gonic/gin"
)

func ConfigMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("cfg", cfg)
		c.Next()
	}
}

func GetConfig(c *gin.Context) *config.Config {
	cfg, exists := c.Get("cfg")
	if !exists {
		return nil
	}
	return cfg.(*config.Config)
}
