package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		SecretKey: "segredo-de-teste",
		Auth: config.Auth{
			TokenDuration: time.Hour,
		},
		Users: []*domain.User{
			{Email: "Ana@Example.com", Name: "Ana", PasswordHash: string(hash), RoleID: 1, Active: true},
			{Email: "inativo@example.com", Name: "Inativo", PasswordHash: string(hash), RoleID: 3, Active: false},
		},
	}
}

func TestLoginUser(t *testing.T) {
	service := NewService(testAuthConfig(t))

	t.Run("Login com credenciais válidas emite token com as claims do usuário", func(t *testing.T) {
		// O email é normalizado: caixa e espaços não importam
		token, err := service.LoginUser("ana@example.com", "senha-forte")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "Ana@Example.com", claims.UserEmail)
		assert.Equal(t, "Ana", claims.UserName)
		assert.Equal(t, 1, claims.UserRoleID)
	})

	t.Run("Senha incorreta é rejeitada", func(t *testing.T) {
		_, err := service.LoginUser("ana@example.com", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desconhecido é rejeitado", func(t *testing.T) {
		_, err := service.LoginUser("ninguem@example.com", "senha-forte")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Usuário desativado é rejeitado", func(t *testing.T) {
		_, err := service.LoginUser("inativo@example.com", "senha-forte")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Dados ausentes são rejeitados", func(t *testing.T) {
		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	service := NewService(testAuthConfig(t))

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		token, err := service.LoginUser("ana@example.com", "senha-forte")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		otherCfg := testAuthConfig(t)
		otherCfg.SecretKey = "outro-segredo"
		otherService := NewService(otherCfg)

		token, err := otherService.LoginUser("ana@example.com", "senha-forte")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}
