package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAdminPassword is the password accepted when a document carries no
// credentials at all. Matches the seed document, so a fresh install can be
// administered before the password is changed.
const DefaultAdminPassword = "admin"

// AdminUser is a named admin account. The newer credential shape; a
// document may carry these alongside the legacy password+hint pair.
type AdminUser struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Login     string `json:"login" yaml:"login"`
	Password  string `json:"password" yaml:"password"`
	Role      string `json:"role" yaml:"role"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// NewAdminUser builds an admin user with a fresh id and creation time.
func NewAdminUser(name, login, password, role string, now time.Time) AdminUser {
	return AdminUser{
		ID:        uuid.NewString(),
		Name:      name,
		Login:     login,
		Password:  password,
		Role:      role,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

func cloneAdminUsers(in []AdminUser) []AdminUser {
	if in == nil {
		return nil
	}
	return append([]AdminUser(nil), in...)
}

// VerifyAdminPassword checks input against every credential form the
// snapshot carries: the legacy password when set, any admin user password,
// and the default password when the document has no credentials at all.
func (s Snapshot) VerifyAdminPassword(input string) bool {
	if s.AdminPassword != "" {
		if input == s.AdminPassword {
			return true
		}
	}
	for _, u := range s.AdminUsers {
		if u.Password != "" && input == u.Password {
			return true
		}
	}
	if s.AdminPassword == "" && len(s.AdminUsers) == 0 {
		return input == DefaultAdminPassword
	}
	return false
}
