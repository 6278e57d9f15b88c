package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// DashboardUser é um usuário provisionado via configuração.
// O painel não gerencia usuários em banco; as credenciais vêm do ambiente.
type DashboardUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Claims struct {
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
