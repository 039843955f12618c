package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/2YH02/portfolio-be/internal/models"
)

const TokenCookieName = "admin_token"

// Resolver rebuilds the request principal from the admin_token cookie, or from
// the legacy "Bearer base64(user:pass)" header when that carrier is enabled.
type Resolver struct {
	codec        *Codec
	adminUser    string
	adminPass    string
	legacyHeader bool
}

func NewResolver(codec *Codec, adminUser, adminPass string, legacyHeader bool) *Resolver {
	return &Resolver{
		codec:        codec,
		adminUser:    adminUser,
		adminPass:    adminPass,
		legacyHeader: legacyHeader,
	}
}

func (r *Resolver) Resolve(req *http.Request) models.Principal {
	if cookie, err := req.Cookie(TokenCookieName); err == nil {
		return r.fromToken(cookie.Value)
	}
	if r.legacyHeader {
		if header := req.Header.Get("Authorization"); header != "" {
			return r.fromHeader(header)
		}
	}
	return models.Guest()
}

func (r *Resolver) fromToken(token string) models.Principal {
	claims, ok := r.codec.Parse(token)
	if !ok {
		return models.Guest()
	}
	role := models.RoleGuest
	if claims.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}
	return models.Principal{Username: claims.Subject, Role: role}
}

func (r *Resolver) fromHeader(header string) models.Principal {
	user, pass, ok := parseBasicCredentials(header)
	if !ok || !VerifyCredentials(user, pass, r.adminUser, r.adminPass) {
		return models.Guest()
	}
	return models.Principal{Username: r.adminUser, Role: models.RoleAdmin}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Login checks the submitted credentials and issues a token for the admin.
func (r *Resolver) Login(user, pass string) (models.Principal, string, error) {
	if !VerifyCredentials(user, pass, r.adminUser, r.adminPass) {
		return models.Guest(), "", ErrInvalidCredentials
	}
	token, err := r.codec.Issue(r.adminUser, string(models.RoleAdmin))
	if err != nil {
		return models.Guest(), "", fmt.Errorf("issue token: %w", err)
	}
	return models.Principal{Username: r.adminUser, Role: models.RoleAdmin}, token, nil
}
