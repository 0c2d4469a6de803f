package middleware

import (
	"strings"

	httpError "foodswipe-order-service/src/pkg/http-error"
	"foodswipe-order-service/src/pkg/token"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const userLocalKey = "auth-user"

// VerifyBearer validates the Authorization header and stores the claim
// metadata in the request locals for GetUser.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewBadRequest()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewBadRequest()
			errObj.Message = "invalid bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		metadata := token.Metadata{}
		if m, ok := claims["metadata"].(map[string]interface{}); ok {
			metadata.UserID, _ = m["user_id"].(string)
			metadata.FullName, _ = m["full_name"].(string)
			metadata.Role, _ = m["role"].(string)
		}
		if metadata.UserID == "" {
			errObj := httpError.NewBadRequest()
			errObj.Message = "token has no user metadata"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(userLocalKey, &metadata)
		return ctx.Next()
	}
}

// GetUser returns the claim metadata stored by VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Metadata {
	if metadata, ok := ctx.Locals(userLocalKey).(*token.Metadata); ok {
		return metadata
	}
	return &token.Metadata{}
}

// RequireRole short-circuits requests from any other role.
func RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := GetUser(ctx)
		for _, role := range roles {
			if user.Role == role {
				return ctx.Next()
			}
		}
		errObj := httpError.NewConflict()
		errObj.Code = fiber.StatusForbidden
		errObj.CodeName = "ForbiddenError"
		errObj.Message = "insufficient role"
		return utils.ResponseError(errObj, ctx)
	}
}
