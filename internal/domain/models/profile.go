package models

import (
	"time"

	"github.com/lib/pq"
)

// Role is a marketplace role a profile may hold.
type Role string

const (
	RoleHogRaiser Role = "hog_raiser"
	RoleMidman    Role = "midman"
	RoleTrader    Role = "trader"
	RoleBuyer     Role = "buyer"
)

// Profile is a row of the profiles table.
type Profile struct {
	ID          string         `db:"id"`
	FirstName   *string        `db:"first_name"`
	LastName    *string        `db:"last_name"`
	DisplayName *string        `db:"display_name"`
	Email       string         `db:"email"`
	Phone       *string        `db:"phone"`
	Region      *string        `db:"region"`
	City        *string        `db:"city"`
	UserRoles   pq.StringArray `db:"user_roles"`
	Provider    *string        `db:"provider"`
	ProviderID  *string        `db:"provider_id"`
	AvatarURL   *string        `db:"avatar_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// ProfilePatch carries the optional columns of a profile update; nil leaves a column unchanged.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
	Email       *string
	Phone       *string
	Region      *string
	City        *string
	UserRoles   []string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.DisplayName == nil && p.Email == nil &&
		p.Phone == nil && p.Region == nil && p.City == nil && p.UserRoles == nil
}
