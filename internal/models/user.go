package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

const defaultPlanningAlertDays = 10

// User is a person using Santo Dinheiro. Authentication happens at the
// identity provider, ExternalID is the provider's ID for the user.
type User struct {
	DefaultModel
	ExternalID string  `json:"externalId" gorm:"uniqueIndex:user_external_id;not null" example:"user_2a8f3kLq9"`
	Email      string  `json:"email" gorm:"index" example:"maria@example.com"`
	Name       string  `json:"name" example:"Maria Silva"`
	Role       Role    `json:"role" example:"USER"`
	IsActive   bool    `json:"isActive" example:"true"`
	Months     []Month `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserSettings
}

// UserSettings are the preferences a user can change themselves.
type UserSettings struct {
	IsTitheEnabled    bool `json:"isTitheEnabled" example:"true"`
	PlanningAlertDays int  `json:"planningAlertDays" example:"10"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	if u.Role == "" {
		u.Role = RoleUser
	}

	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if u.PlanningAlertDays < 1 || u.PlanningAlertDays > 31 {
		return ErrPlanningAlertDays
	}

	return nil
}

// IsAdmin reports if the persisted role grants admin access.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the identity information the identity provider knows about a user.
type Profile struct {
	ExternalID string
	Email      string
	Name       string
}

// ProvisionUser returns the user for the profile, creating it if it does not exist yet.
// Email and name are refreshed from the profile when they changed.
//
// Concurrent calls for the same profile are safe, the unique external ID
// makes all but the first insert a no-op.
func ProvisionUser(db *gorm.DB, p Profile) (User, error) {
	user := User{
		ExternalID: p.ExternalID,
		Email:      p.Email,
		Name:       p.Name,
		Role:       RoleUser,
		IsActive:   true,
		UserSettings: UserSettings{
			IsTitheEnabled:    true,
			PlanningAlertDays: defaultPlanningAlertDays,
		},
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		return User{}, err
	}

	var stored User
	err = db.Where(&User{ExternalID: p.ExternalID}).First(&stored).Error
	if err != nil {
		return User{}, err
	}

	updates := map[string]any{}
	if p.Email != "" && !strings.EqualFold(p.Email, stored.Email) {
		updates["email"] = strings.ToLower(p.Email)
	}
	if p.Name != "" && p.Name != stored.Name {
		updates["name"] = p.Name
	}

	if len(updates) > 0 {
		err = db.Model(&stored).Updates(updates).Error
		if err != nil {
			return User{}, err
		}
	}

	return stored, nil
}

// UserWithMonths is a user together with the number of months it owns.
type UserWithMonths struct {
	User
	MonthsCount int64 `json:"monthsCount" example:"4"`
}

// ListUsersWithMonths returns all users, newest first, with their month counts.
func ListUsersWithMonths(db *gorm.DB) ([]UserWithMonths, error) {
	var users []User
	err := db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	var counts []struct {
		UserID uuid.UUID
		Count  int64
	}
	err = db.Model(&Month{}).Select("user_id, COUNT(*) AS count").Group("user_id").Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byUser[c.UserID] = c.Count
	}

	list := make([]UserWithMonths, 0, len(users))
	for _, u := range users {
		list = append(list, UserWithMonths{User: u, MonthsCount: byUser[u.ID]})
	}

	return list, nil
}

// SetUserActive activates or deactivates a user. Deactivated users keep their
// data but cannot use the API.
func SetUserActive(db *gorm.DB, id uuid.UUID, active bool) (User, error) {
	var user User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return User{}, err
	}

	err = db.Model(&user).Select("IsActive").Updates(User{IsActive: active}).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserSync is a change to a user announced by the identity provider.
// Nil fields were not part of the announcement and are left unchanged.
type UserSync struct {
	ExternalID string
	Email      *string
	Name       *string
	IsActive   *bool
}

// SyncUser applies a change from the identity provider, creating the user
// if it does not exist yet.
func SyncUser(db *gorm.DB, s UserSync) (User, error) {
	var user User
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = ProvisionUser(tx, Profile{ExternalID: s.ExternalID})
		if err != nil {
			return err
		}

		fields := []any{}
		update := User{}
		if s.Email != nil {
			fields = append(fields, "Email")
			update.Email = *s.Email
		}
		if s.Name != nil {
			fields = append(fields, "Name")
			update.Name = *s.Name
		}
		if s.IsActive != nil {
			fields = append(fields, "IsActive")
			update.IsActive = *s.IsActive
		}

		if len(fields) == 0 {
			return nil
		}

		return tx.Model(&user).Select("", fields...).Updates(update).Error
	})

	return user, err
}

// DeactivateExternalUser deactivates the user with the external ID. It
// returns false if there is no such user.
func DeactivateExternalUser(db *gorm.DB, externalID string) (bool, error) {
	res := db.Model(&User{}).Where("external_id = ?", externalID).UpdateColumn("is_active", false)
	return res.RowsAffected > 0, res.Error
}
