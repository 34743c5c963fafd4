package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User representa um usuário declarado na configuração do serviço.
// Não há cadastro dinâmico: a lista de usuários vem do ambiente.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
	Active       bool   `json:"active"`
}

type Claims struct {
	UserEmail  string `json:"user_email"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
