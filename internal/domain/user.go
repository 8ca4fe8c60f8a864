package domain

import "time"

// AccountRole is the account-level role assigned at registration.
type AccountRole string

const (
	AccountRoleOwner AccountRole = "owner"
	AccountRoleGuest AccountRole = "guest"
)

// IsValid returns true for a known account role.
func (r AccountRole) IsValid() bool {
	return r == AccountRoleOwner || r == AccountRoleGuest
}

// User represents a registered account. Federated accounts carry the
// identity provider name and the provider-scoped subject id; local accounts
// carry a bcrypt password hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash *string
	Name         string
	Role         AccountRole
	Provider     *string
	ProviderID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFederated returns true if the account was created through an external
// identity provider.
func (u *User) IsFederated() bool {
	return u.Provider != nil && u.ProviderID != nil
}
