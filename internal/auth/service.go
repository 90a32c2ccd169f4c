package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Priyankavya/FitnessApp/config"
	"github.com/Priyankavya/FitnessApp/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSecretKey   = errors.New("invalid admin secret key")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailNotSent       = errors.New("failed to send email")
)

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Service interface {
	Register(input RegisterInput) error
	RegisterAdmin(input AdminRegisterInput) error
	Login(input LoginInput) (*LoginResult, error)
	GetUserByID(userID uint) (User, error)

	RequestPasswordReset(email string) error
	ResetPassword(token string, newPassword string) error
}

type service struct {
	repo        Repository
	jwtSecret   string
	tokenTTL    time.Duration
	adminSecret string
}

func NewService(r Repository, cfg *config.Config) Service {
	return &service{
		repo:        r,
		jwtSecret:   cfg.JWTSecret,
		tokenTTL:    time.Duration(cfg.JWTTTLHours) * time.Hour,
		adminSecret: cfg.AdminSecretKey,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (s *service) Register(in RegisterInput) error {
	exists, err := s.repo.EmailExists(in.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	return s.repo.Create(user)
}

type AdminRegisterInput struct {
	Name      string
	Email     string
	Password  string
	SecretKey string
}

func (s *service) RegisterAdmin(in AdminRegisterInput) error {
	if s.adminSecret == "" || in.SecretKey != s.adminSecret {
		return ErrInvalidSecretKey
	}

	exists, err := s.repo.AdminEmailExists(in.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &Admin{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	return s.repo.CreateAdmin(admin)
}

// =============================
// Login (admin first, then user)
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(in LoginInput) (*LoginResult, error) {
	admin, err := s.repo.FindAdminByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) == nil {
			token, err := s.generateToken(admin.ID, RoleAdmin)
			if err != nil {
				return nil, err
			}
			return &LoginResult{Token: token, Role: RoleAdmin}, nil
		}
	}

	user, err := s.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, RoleUser)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: RoleUser}, nil
}

func (s *service) generateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *service) GetUserByID(userID uint) (User, error) {
	return s.repo.FindByID(userID)
}

// =============================
// Forgot / Reset Password
// =============================

func (s *service) RequestPasswordReset(email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	resetToken := generateSecureToken()
	key := fmt.Sprintf("reset_token:%s", resetToken)

	if err := utils.SetToken(key, fmt.Sprint(user.ID), 15*time.Minute); err != nil {
		return fmt.Errorf("could not save reset token: %w", err)
	}

	if err := utils.SendResetLink(user.Email, resetToken); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailNotSent, err)
	}
	return nil
}

func (s *service) ResetPassword(token string, newPassword string) error {
	key := fmt.Sprintf("reset_token:%s", token)
	val, err := utils.GetToken(key)
	if err != nil {
		return ErrInvalidToken
	}

	var userID uint
	if _, err := fmt.Sscan(val, &userID); err != nil {
		return ErrInvalidToken
	}

	if _, err := s.repo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(userID, string(hash)); err != nil {
		return err
	}

	_ = utils.DeleteToken(key)
	return nil
}

func generateSecureToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
