// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campus-chatbot-be/internal/dto"
	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/internal/repository/contract"
	"campus-chatbot-be/pkg/assist/session"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Verify(ctx context.Context, email, password string, role entity.UserRole, department entity.Department) (*entity.UserIdentity, error)
	Logout(ctx context.Context, sessionKey string) error
}

type authService struct {
	users       contract.UserRepository
	sessions    *session.Manager
	jwtSecret   string
	emailDomain string
}

func NewAuthService(users contract.UserRepository, sessions *session.Manager, jwtSecret, emailDomain string) IAuthService {
	return &authService{
		users:       users,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
		emailDomain: emailDomain,
	}
}

var emailLocalPattern = regexp.MustCompile(`^[a-z0-9._%+-]+$`)

func (s *authService) institutionalEmail(email string) bool {
	suffix := "@" + s.emailDomain
	if !strings.HasSuffix(email, suffix) {
		return false
	}
	return emailLocalPattern.MatchString(strings.TrimSuffix(email, suffix))
}

// Verify is the authentication-store check: credentials plus the claimed
// role and department must all line up with the stored user.
func (s *authService) Verify(ctx context.Context, email, password string, role entity.UserRole, department entity.Department) (*entity.UserIdentity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, nil
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	if user.Role != role || user.Department != department {
		return nil, nil
	}
	return &entity.UserIdentity{
		FullName:   user.FullName,
		Role:       user.Role,
		Department: user.Department,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !s.institutionalEmail(email) {
		return nil, errors.New("please use a valid institutional email")
	}

	role := entity.UserRole(req.Role)
	if role != entity.UserRoleStudent && role != entity.UserRoleTeacher {
		return nil, errors.New("invalid role")
	}
	department, ok := entity.ParseDepartment(req.Department)
	if !ok {
		return nil, errors.New("unknown department")
	}

	identity, err := s.Verify(ctx, email, req.Password, role, department)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.issueToken(email, identity)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      token,
		FullName:   identity.FullName,
		Role:       string(identity.Role),
		Department: string(identity.Department),
		LoggedIn:   true,
	}, nil
}

// Logout discards the caller's conversation identifier so the next chat
// starts a fresh exchange with the generation agent.
func (s *authService) Logout(_ context.Context, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}
	s.sessions.Clear(sessionKey)
	return nil
}

func (s *authService) issueToken(email string, identity *entity.UserIdentity) (string, error) {
	claims := jwt.MapClaims{
		"sub":        email,
		"full_name":  identity.FullName,
		"role":       string(identity.Role),
		"department": string(identity.Department),
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
