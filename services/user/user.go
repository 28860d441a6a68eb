package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "github.com/awalle000/Fadila-sales-system/database/repository/user"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/services/activity"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The
// message never reveals which of the two failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountDeactivated is returned when a deactivated account signs in.
var ErrAccountDeactivated = errors.New("your account has been deactivated, please contact the CEO")

// ErrNotFound is returned when a user id does not resolve.
var ErrNotFound = errors.New("user not found")

// ErrValidation wraps account input validation failures.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

const tokenDuration = 30 * 24 * time.Hour

// RegisterRequest carries the fields for a new staff account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResult is a successful sign-in: the account plus a signed token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages staff accounts and authentication.
type UserService interface {
	Login(email, password, ip, userAgent string) (*AuthResult, error)
	Register(req RegisterRequest, actor models.Actor, ip string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List() ([]models.User, error)
	SetActive(id string, active bool) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Audit activity.ActivityService
}

// Login verifies credentials and issues a signed token. Sign-ins are
// recorded to both the login and activity logs.
func (s *DefaultUserService) Login(email, password, ip, userAgent string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, &ErrValidation{Message: "Please provide email and password"}
	}

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.Audit.RecordLogin(user, ip, userAgent)
	s.Audit.Record(models.Actor{ID: user.ID, Name: user.Name, Role: user.Role},
		models.ActionLogin, fmt.Sprintf("User logged in from IP: %s", ip), ip)

	return &AuthResult{User: user, Token: token}, nil
}

// Register creates a staff account. Only the CEO role may call this,
// enforced at the route layer.
func (s *DefaultUserService) Register(req RegisterRequest, actor models.Actor, ip string) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &ErrValidation{Message: "Name, email and password are required"}
	}
	if req.Role != models.RoleCEO && req.Role != models.RoleManager {
		return nil, &ErrValidation{Message: "Role must be ceo or manager"}
	}
	if len(req.Password) < 8 {
		return nil, &ErrValidation{Message: "Password must be at least 8 characters"}
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrValidation{Message: "An account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	s.Audit.Record(actor, "USER_REGISTERED",
		fmt.Sprintf("Registered %s account for %s", user.Role, user.Email), ip)
	return user, nil
}

// GetByID retrieves a single account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List retrieves all accounts.
func (s *DefaultUserService) List() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetActive activates or deactivates an account.
func (s *DefaultUserService) SetActive(id string, active bool) (*models.User, error) {
	if err := s.Repo.Update(id, map[string]any{"isActive": active}); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(id)
}
