package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/repository"
	"github.com/bkaraca/taskhive/internal/utils"
	"github.com/bkaraca/taskhive/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	// ErrInvalidCredentials covers unknown username, wrong password and
	// deactivated accounts alike, so responses cannot be used to
	// enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// RegisterInput carries the unauthenticated registration fields.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	PhoneNumber string
}

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register validates the input, checks both uniqueness constraints up
// front, hashes the password and persists the new user. The returned
// record still contains the hash; callers respond with user.Public().
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if err := validateRegisterInput(in); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}

	// Pre-check collisions so the client gets a clean conflict instead
	// of a driver constraint error.
	existing, err := s.userRepo.GetUserByUsername(in.Username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	existing, err = s.userRepo.GetUserByEmail(in.Email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         models.ParseRole(in.Role),
		IsActive:     true,
		PhoneNumber:  in.PhoneNumber,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User registered successfully",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// Login verifies the credentials and issues a signed token. Every failure
// path returns ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to get user by username",
			zap.String("username", username),
			zap.Error(err),
		)
		return "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("username", username),
		)
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Warn("Login failed: user deactivated",
			zap.Uint("user_id", user.ID),
		)
		return "", ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		logger.Log.Warn("Login failed: invalid password",
			zap.Uint("user_id", user.ID),
		)
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return token, nil
}

func validateRegisterInput(in RegisterInput) error {
	if len(in.Username) < 3 || len(in.Username) > 50 {
		return errors.New("username must be between 3 and 50 characters")
	}
	if len(in.Password) < 6 || len(in.Password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}
	if len(in.Email) < 5 || len(in.Email) > 100 {
		return errors.New("email must be between 5 and 100 characters")
	}
	if !emailRegex.MatchString(in.Email) {
		return errors.New("invalid email format")
	}
	if len(in.FirstName) < 1 || len(in.FirstName) > 50 {
		return errors.New("first name must be between 1 and 50 characters")
	}
	if len(in.LastName) < 1 || len(in.LastName) > 50 {
		return errors.New("last name must be between 1 and 50 characters")
	}
	if len(in.PhoneNumber) < 10 || len(in.PhoneNumber) > 15 {
		return errors.New("phone number must be between 10 and 15 characters")
	}
	return nil
}
