package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
	"github.com/sbilibin2017/gw-pokedex/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, role models.Role) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, identity models.Identity) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user with the default role.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrPasswordTooLong
	}
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), models.DefaultRole); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			log.Errorw("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token carrying its identity.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, models.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
