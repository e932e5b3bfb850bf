package models

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RoleGrant records that a user's persisted role was raised to admin
// because the user matched an admin allow-list.
type RoleGrant struct {
	DefaultModel
	UserID    uuid.UUID `json:"userId" gorm:"index;not null" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Role      Role      `json:"role" example:"ADMIN"`
	Source    string    `json:"source" example:"allow-list:email"`
	GrantedBy string    `json:"grantedBy" example:"user_2a8f3kLq9"` // External ID of the admin or the name of the maintenance job
}

// GrantAdmin persists the admin role for the user and records the grant.
// It is a no-op for users that already are admins.
func GrantAdmin(db *gorm.DB, user User, source, grantedBy string) (RoleGrant, error) {
	if user.IsAdmin() {
		return RoleGrant{}, nil
	}

	grant := RoleGrant{
		UserID:    user.ID,
		Role:      RoleAdmin,
		Source:    source,
		GrantedBy: grantedBy,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&user).Select("Role").Updates(User{Role: RoleAdmin}).Error
		if err != nil {
			return err
		}

		return tx.Omit("User").Create(&grant).Error
	})
	if err != nil {
		return RoleGrant{}, err
	}

	log.Info().
		Bool("audit", true).
		Str("user", user.ID.String()).
		Str("externalId", user.ExternalID).
		Str("source", source).
		Str("grantedBy", grantedBy).
		Msg("admin role granted")

	return grant, nil
}
