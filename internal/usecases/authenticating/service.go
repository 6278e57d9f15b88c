package authenticating

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/forecast-venus-api/internal/config"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator autentica o usuário do painel e valida tokens de sessão.
// Os usuários são provisionados via configuração, não em banco.
type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(email string) (*domain.DashboardUser, error)
}

type Service struct {
	cfg   *config.Config
	users map[string]*domain.DashboardUser
}

func NewService(cfg *config.Config) Authenticator {
	users := make(map[string]*domain.DashboardUser)

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPasswordHash != "" {
		email := handleEmail(cfg.Auth.AdminEmail)
		users[email] = &domain.DashboardUser{
			Name:         cfg.Auth.AdminName,
			Email:        email,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		}
	} else {
		logrus.Warn("Nenhum usuário de painel configurado; login ficará indisponível")
	}

	return &Service{
		cfg:   cfg,
		users: users,
	}
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if len(s.users) == 0 {
		return "", ErrNoUserConfigured
	}

	user, ok := s.users[handleEmail(email)]
	if !ok {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	claims := &domain.Claims{
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUserProfile(email string) (*domain.DashboardUser, error) {
	user, ok := s.users[handleEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
