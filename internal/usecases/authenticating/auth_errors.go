package authenticating

import "errors"

// Erros de autenticação do painel
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrNoUserConfigured   = errors.New("nenhum usuário de painel configurado")
)
