package auth

import (
	"crypto/subtle"

	"github.com/2YH02/portfolio-be/internal/models"
)

// VerifyCredentials reports whether both fields match the configured admin exactly.
func VerifyCredentials(user, pass, adminUser, adminPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(adminPass)) == 1
	return userOK && passOK
}

func IsAdmin(p models.Principal) bool {
	return p.Role == models.RoleAdmin
}
