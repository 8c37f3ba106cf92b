package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mrivera/user-auth-service/internal/config"
	"github.com/mrivera/user-auth-service/internal/domain"
	"github.com/mrivera/user-auth-service/internal/repository"
	"github.com/mrivera/user-auth-service/internal/validate"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
)

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// The password length is checked before hashing: bcrypt will happily
	// digest an empty string, which would mask a missing password.
	if msgs := validate.Password(input.Password); len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Collect every violated rule so the client sees them all at once.
	var msgs []string
	msgs = append(msgs, validate.Username(input.Username)...)
	msgs = append(msgs, validate.Email(input.Email)...)

	if taken, err := s.userRepo.UsernameTaken(ctx, input.Username); err != nil {
		return nil, err
	} else if taken {
		msgs = append(msgs, validate.MsgUsernameTaken)
	}
	if taken, err := s.userRepo.EmailTaken(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		msgs = append(msgs, validate.MsgEmailTaken)
	}

	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A racing insert can lose to the unique index after the
		// pre-checks passed; report it the same way.
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, domain.NewValidationError(validate.MsgUsernameTaken)
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, domain.NewValidationError(validate.MsgEmailTaken)
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmailWithSecret(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidEmail
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken checks the signature and expiry and returns the subject id.
// Stateless: there is no revocation list to consult.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, errors.New("missing subject claim")
	}

	return uuid.Parse(sub)
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
