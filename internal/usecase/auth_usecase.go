package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const sessionTTL = 24 * time.Hour

// IAuthUseCase authenticates staff and issues session tokens.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.Profile, error)
}

type AuthUseCase struct {
	profiles interfaces.IProfileRepository
	secret   []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(profiles interfaces.IProfileRepository, secret []byte) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, secret: secret}
}

// Login verifies the password against the stored bcrypt hash and returns an
// HS256 session token carrying the profile id, email and role. A missing
// profile and a wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.Profile{}, ErrInvalidCredentials
	}

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.Profile{}, err
	}
	if p.ID == "" {
		return "", entities.Profile{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", entities.Profile{}, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   p.ID,
		"email": p.Email,
		"role":  string(p.Role),
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", entities.Profile{}, err
	}
	return signed, p, nil
}
