package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"templeku_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"password" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	validRole := false
	for _, r := range constants.AllRoles {
		if u.Role == r {
			validRole = true
			break
		}
	}
	if !validRole {
		return errors.New("role tidak dikenal")
	}

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		msg := ""
		for _, fieldErr := range validationErrs {
			if msg != "" {
				msg += "; "
			}
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " wajib diisi."
			case "email":
				msg += "Format email tidak valid."
			case "min":
				msg += fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				msg += fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
			default:
				msg += fieldErr.Field() + " tidak valid."
			}
		}
		return errors.New(msg)
	}
	return err
}
