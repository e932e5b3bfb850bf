package auth

import (
	"strings"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Source names the reason a policy grants access.
type Source string

const (
	SourceRole           Source = "role"
	SourceAllowListID    Source = "allow-list:id"
	SourceAllowListEmail Source = "allow-list:email"
)

// Policy decides if a user has administrative access.
// Policies only read, they never change the user.
type Policy interface {
	Allows(u models.User) (bool, Source)
}

// RolePolicy grants access to users with the persisted admin role.
type RolePolicy struct{}

func (RolePolicy) Allows(u models.User) (bool, Source) {
	return u.IsAdmin(), SourceRole
}

// AllowListPolicy grants access to users whose external ID or email
// matches one of the configured patterns. Patterns may contain * wildcards.
type AllowListPolicy struct {
	IDs    []string
	Emails []string
}

func (p AllowListPolicy) Allows(u models.User) (bool, Source) {
	for _, pattern := range p.IDs {
		if glob.Glob(pattern, u.ExternalID) {
			return true, SourceAllowListID
		}
	}

	if u.Email == "" {
		return false, ""
	}

	email := strings.ToLower(u.Email)
	for _, pattern := range p.Emails {
		if glob.Glob(strings.ToLower(pattern), email) {
			return true, SourceAllowListEmail
		}
	}

	return false, ""
}

// Sync persists the admin role for all users matched by the allow-list
// that do not have it yet. Every grant is recorded and logged.
func (p AllowListPolicy) Sync(db *gorm.DB, grantedBy string) ([]models.RoleGrant, error) {
	var users []models.User
	err := db.Where("role <> ?", models.RoleAdmin).Find(&users).Error
	if err != nil {
		return nil, err
	}

	grants := []models.RoleGrant{}
	for _, u := range users {
		ok, source := p.Allows(u)
		if !ok {
			continue
		}

		grant, err := models.GrantAdmin(db, u, string(source), grantedBy)
		if err != nil {
			return grants, err
		}
		grants = append(grants, grant)
	}

	log.Info().Int("granted", len(grants)).Str("grantedBy", grantedBy).Msg("admin roles synchronized")
	return grants, nil
}

type anyPolicy []Policy

// Any combines policies with a logical OR.
func Any(policies ...Policy) Policy {
	return anyPolicy(policies)
}

func (a anyPolicy) Allows(u models.User) (bool, Source) {
	for _, p := range a {
		if ok, source := p.Allows(u); ok {
			return true, source
		}
	}

	return false, ""
}
