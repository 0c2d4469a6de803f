package middleware

import (
	"time"

	"foodswipe-order-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs one structured line per request.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		meta := ctx.Method() + " " + ctx.Path()
		if err != nil {
			logger.Error("http", err.Error(), "request", meta)
			return err
		}
		logger.Info("http", time.Since(start).String(), "request", meta)
		return nil
	}
}
