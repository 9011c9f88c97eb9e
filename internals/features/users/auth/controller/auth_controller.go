package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authzService "templeku_backend/internals/features/temples/temple_admins/service"
	"templeku_backend/internals/features/users/auth/service"
	userModel "templeku_backend/internals/features/users/user/model"
	helper "templeku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/me
// Data admin scope di sini HANYA untuk gating UI (sembunyikan tombol,
// redirect dini). Trust boundary tetap di cek server-side per mutasi.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	user.Password = ""

	isSuper := false
	var templeIDs []string
	grant, err := authzService.FindGrant(ac.DB, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}
	if grant != nil {
		isSuper = grant.GrantIsSuperAdmin
		if grant.GrantIsAdmin && grant.GrantTempleID != nil {
			templeIDs = append(templeIDs, grant.GrantTempleID.String())
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user": fiber.Map{
			"id":               user.ID,
			"user_name":        user.UserName,
			"email":            user.Email,
			"role":             user.Role,
			"is_super_admin":   isSuper,
			"temple_admin_ids": templeIDs,
		},
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}
