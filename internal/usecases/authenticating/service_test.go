package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:            "segredo-de-teste",
			TokenTTLHours:     1,
			AdminName:         "Administrador",
			AdminEmail:        "Admin@ForecastVenus.com.br",
			AdminPasswordHash: string(hash),
		},
	}
}

func TestService_LoginUser(t *testing.T) {
	service := NewService(testConfig(t, "senha-forte"))

	tests := []struct {
		name     string
		email    string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais válidas emitem token",
			email:    "admin@forecastvenus.com.br",
			password: "senha-forte",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Email com maiúsculas e espaços é normalizado",
			email:    "  Admin@ForecastVenus.com.br ",
			password: "senha-forte",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha incorreta é rejeitada",
			email:    "admin@forecastvenus.com.br",
			password: "senha-errada",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário desconhecido é rejeitado",
			email:    "outro@forecastvenus.com.br",
			password: "senha-forte",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_LoginUser_NoUserConfigured(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.LoginUser("admin@forecastvenus.com.br", "senha")
	assert.ErrorIs(t, err, ErrNoUserConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testConfig(t, "senha-forte")
	service := NewService(cfg)

	token, err := service.LoginUser("admin@forecastvenus.com.br", "senha-forte")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "Administrador", claims.UserName)
	assert.Equal(t, "admin@forecastvenus.com.br", claims.UserEmail)

	// Token assinado com outro segredo é rejeitado
	other := NewService(&config.Config{
		Auth: config.Auth{
			Secret:            "outro-segredo",
			TokenTTLHours:     1,
			AdminEmail:        cfg.Auth.AdminEmail,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		},
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Lixo não é token
	_, err = service.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_GetUserProfile(t *testing.T) {
	service := NewService(testConfig(t, "senha-forte"))

	user, err := service.GetUserProfile("admin@forecastvenus.com.br")
	assert.NoError(t, err)
	assert.Equal(t, "Administrador", user.Name)

	_, err = service.GetUserProfile("desconhecido@forecastvenus.com.br")
	assert.Error(t, err)
}
