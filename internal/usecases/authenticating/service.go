package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ListUser() []*domain.User
	GetUserByEmail(email string) *domain.User
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica contra os usuários declarados na configuração.
// Não há cadastro em tempo de execução: a lista de usuários vem da
// variável de ambiente, com as senhas já em hash bcrypt.
type Service struct {
	cfg          *config.Config
	usersByEmail map[string]*domain.User
}

func NewService(cfg *config.Config) Authenticator {
	usersByEmail := make(map[string]*domain.User, len(cfg.Users))
	for _, user := range cfg.Users {
		usersByEmail[handleEmail(user.Email)] = user
	}

	return &Service{
		cfg:          cfg,
		usersByEmail: usersByEmail,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser() []*domain.User {
	users := make([]*domain.User, 0, len(s.usersByEmail))
	for _, user := range s.usersByEmail {
		users = append(users, &domain.User{
			Email:  user.Email,
			Name:   user.Name,
			RoleID: user.RoleID,
			Active: user.Active,
		})
	}
	return users
}

func (s *Service) GetUserByEmail(email string) *domain.User {
	return s.usersByEmail[handleEmail(email)]
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user := s.GetUserByEmail(email)

	// Verificar se o usuário existe
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	// Verificar se o usuário está ativo
	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.Email, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.Email, "Senha incorreta")
	}

	// Gerar token JWT
	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserEmail:  user.Email,
		UserName:   user.Name,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Auth.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
