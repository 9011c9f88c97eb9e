package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"templeku_backend/internals/configs"
	grantModel "templeku_backend/internals/features/temples/temple_admins/model"
	authModel "templeku_backend/internals/features/users/auth/model"
	authRepo "templeku_backend/internals/features/users/auth/repository"
	userModel "templeku_backend/internals/features/users/user/model"
	helper "templeku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// computeRefreshHash: HMAC-SHA256 supaya refresh token tidak tersimpan plaintext
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

/* ==========================
   Claims builder
========================== */

// adminScope merangkum grant record user untuk dimasukkan ke klaim access token.
// Klaim ini dipakai UI/middleware sebagai afordansi; cek otoritatif tetap
// lookup grant di DB per request.
type adminScope struct {
	IsSuperAdmin   bool
	TempleAdminIDs []string
}

func loadAdminScope(db *gorm.DB, userID uuid.UUID) (adminScope, error) {
	var grant grantModel.AdminGrantModel
	err := db.Where("grant_user_id = ?", userID).First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminScope{}, nil
		}
		return adminScope{}, err
	}

	scope := adminScope{IsSuperAdmin: grant.GrantIsSuperAdmin}
	if grant.GrantIsAdmin && grant.GrantTempleID != nil {
		scope.TempleAdminIDs = []string{grant.GrantTempleID.String()}
	}
	return scope, nil
}

func buildAccessClaims(user *userModel.UserModel, scope adminScope, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":               user.ID.String(),
		"user_name":        user.UserName,
		"role":             user.Role,
		"is_super_admin":   scope.IsSuperAdmin,
		"temple_admin_ids": scope.TempleAdminIDs,
		"typ":              "access",
		"iat":              now.Unix(),
		"exp":              now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   REGISTER
========================== */

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := authRepo.IsUsernameTaken(db, user.UserName)
	if err != nil {
		log.Printf("[ERROR] Cek username: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	user.Password = string(hashed)

	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if strings.TrimSpace(input.Identifier) == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "identifier dan password wajib diisi")
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(input.Identifier))
	if err != nil {
		// jangan bocorkan apakah user ada
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identitas atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identitas atau password salah")
	}

	scope, err := loadAdminScope(db, user.ID)
	if err != nil {
		log.Printf("[ERROR] Gagal ambil admin scope: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data admin")
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, scope, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		log.Printf("[ERROR] Gagal simpan refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	setRefreshCookie(c, refreshToken, now.Add(refreshTTLDefault))

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":               user.ID,
			"user_name":        user.UserName,
			"email":            user.Email,
			"role":             user.Role,
			"is_super_admin":   scope.IsSuperAdmin,
			"temple_admin_ids": scope.TempleAdminIDs,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklist access token + cabut refresh token
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	accessToken := fields[1]

	if err := authRepo.BlacklistToken(db, accessToken, accessTTLDefault); err != nil {
		log.Printf("[ERROR] Gagal blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if err := authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(refreshCookie, refreshSecret)); err != nil {
				log.Printf("[WARN] Gagal hapus refresh token: %v", err)
			}
		}
	}
	clearRefreshCookie(c)

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   Cookies
========================== */

func setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}
