// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// extractBearerToken lê o token do header Authorization ou do cookie.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("header Authorization inválido (esperado: Bearer <token>)")
	}
	if tk := strings.TrimSpace(c.Cookies("access_token")); tk != "" {
		return tk, nil
	}
	return "", errors.New("token em falta")
}

// validateTokenExpiry valida exp com uma pequena folga de clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expAny, ok := claims["exp"]
	if !ok {
		return errors.New("claim exp em falta")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return errors.New("claim exp inválido")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub", "id"} {
		if v, ok := claims[key]; ok {
			if s, ok := v.(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
					return id, nil
				}
			}
		}
	}
	return uuid.Nil, errors.New("user_id em falta ou inválido nos claims")
}

// ensureUserActive confirma que o utilizador existe e está activo.
func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var isActive bool
	err := db.Raw(`
		SELECT utilizador_is_active
		FROM utilizadores
		WHERE utilizador_id = ? AND utilizador_deleted_at IS NULL
		LIMIT 1
	`, userID).Scan(&isActive).Error
	if err != nil {
		return err
	}
	if !isActive {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_name"].(string); ok && v != "" {
		c.Locals("user_name", v)
	}
}
