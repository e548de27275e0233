// file: internals/features/identidade/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sgescolar_backend/internals/configs"
	"sgescolar_backend/internals/features/identidade/auth/dto"
	model "sgescolar_backend/internals/features/identidade/auth/model"
	service "sgescolar_backend/internals/features/identidade/auth/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// ========================== REGISTER ==========================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de pedido inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctl.DB.Model(&model.UtilizadorModel{}).
		Where("utilizador_email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email já registado")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da password")
	}
	hash := string(hashed)

	u := model.UtilizadorModel{
		UtilizadorNome:         strings.TrimSpace(req.Nome),
		UtilizadorEmail:        email,
		UtilizadorPasswordHash: &hash,
	}
	if err := ctl.DB.Create(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar utilizador")
	}

	return helper.JsonCreated(c, "Utilizador registado", fiber.Map{
		"utilizador_id": u.UtilizadorID,
		"nome":          u.UtilizadorNome,
		"email":         u.UtilizadorEmail,
	})
}

// ========================== LOGIN ==========================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de pedido inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u model.UtilizadorModel
	err := ctl.DB.Where("utilizador_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !u.UtilizadorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "A sua conta foi desactivada")
	}
	if u.UtilizadorPasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*u.UtilizadorPasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	return ctl.issueTokens(c, &u)
}

// ========================== LOGIN GOOGLE ==========================
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de pedido inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Login Google não configurado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] Google ID token inválido:", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google inválido")
	}

	// cria o utilizador no primeiro login Google
	var u model.UtilizadorModel
	err = ctl.DB.Where("utilizador_google_sub = ?", claimSet.Sub).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub := claimSet.Sub
		u = model.UtilizadorModel{
			UtilizadorNome:      claimSet.Name,
			UtilizadorEmail:     strings.ToLower(claimSet.Email),
			UtilizadorGoogleSub: &sub,
		}
		if err := ctl.DB.Create(&u).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar utilizador")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !u.UtilizadorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "A sua conta foi desactivada")
	}

	return ctl.issueTokens(c, &u)
}

// ========================== REFRESH ==========================
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token em falta")
	}
	userID, err := service.ParseRefreshToken(refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var u model.UtilizadorModel
	if err := ctl.DB.Where("utilizador_id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Utilizador não encontrado")
	}
	if !u.UtilizadorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "A sua conta foi desactivada")
	}
	return ctl.issueTokens(c, &u)
}

// ========================== LOGOUT ==========================
// O token de acesso vai para a blacklist até expirar.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token em falta")
	}
	token := strings.TrimSpace(parts[1])

	entry := model.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().Add(2 * time.Hour),
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao terminar sessão")
	}

	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Sessão terminada", nil)
}

// ========================== ME ==========================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	rc := helperAuth.GetRoleCache(c)
	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":   userID,
		"role":      rc.Role,
		"escola_id": rc.EscolaID,
		"provincia": rc.Provincia,
		"municipio": rc.Municipio,
	})
}

/* ===== helpers ===== */

func (ctl *AuthController) issueTokens(c *fiber.Ctx, u *model.UtilizadorModel) error {
	access, err := service.GenerateAccessToken(u.UtilizadorID, u.UtilizadorNome)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refresh, err := service.GenerateRefreshToken(u.UtilizadorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return helper.JsonOK(c, "Login efectuado", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       u.UtilizadorID.String(),
		Nome:         u.UtilizadorNome,
	})
}
