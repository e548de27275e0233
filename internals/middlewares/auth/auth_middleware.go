// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sgescolar_backend/internals/configs"
	TokenBlacklistModel "sgescolar_backend/internals/features/identidade/auth/model"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

// AuthMiddleware valida o JWT, verifica blacklist, confirma que o
// utilizador está activo e carrega a projecção role_cache nos Locals.
// Toda a avaliação de políticas a jusante usa APENAS essa projecção.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization (ou cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Blacklist (uma vez por request)
		if c.Locals("token_checked") == nil {
			var existing TokenBlacklistModel.TokenBlacklistModel
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token encontrado na blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error ao verificar blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verificação do JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao fazer parse do token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validar exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) user_id + utilizador activo
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(helperAuth.LocUserID, userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			log.Println("[ERROR] ensureUserActive:", err)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "A sua conta foi desactivada")
		}

		// 6) Carregar role_cache (fonte única das políticas; sem papel
		// atribuído o utilizador segue com cache vazia — os escopos
		// negam tudo por omissão)
		if rc, err := helperAuth.LoadRoleCache(db, userID); err == nil {
			c.Locals(helperAuth.LocRoleCache, rc)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] LoadRoleCache:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
