package service

import (
	"taskboard/internal/apperror"
	"taskboard/internal/auth"
	"taskboard/internal/core/model"
	"taskboard/internal/core/repository"
)

// RegisterResult is what registration hands back to the client: a
// session token plus the display name and the password hash artifact
// the existing contract exposes.
type RegisterResult struct {
	Token        string
	Name         string
	PasswordHash string
}

type LoginResult struct {
	Token string
	Name  string
}

type AuthService interface {
	Register(name, email, password, confirmPassword string) (*RegisterResult, error)
	Login(email, password string) (*LoginResult, error)
	UpdatePassword(name, oldPassword, newPassword string) error
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *authService) Register(name, email, password, confirmPassword string) (*RegisterResult, error) {
	if password != confirmPassword {
		return nil, apperror.NewValidation("Passwords do not match")
	}
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, apperror.NewValidation("Bad Request")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperror.NewInternal("Failed to register user", err)
	}
	if existing != nil {
		return nil, apperror.NewConflict("Email is already registered")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.NewInternal("Failed to register user", err)
	}

	user := model.NewUser(name, email, passwordHash)
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperror.NewInternal("Failed to register user", err)
	}

	token, err := auth.IssueToken(user.Email, s.jwtSecret)
	if err != nil {
		return nil, apperror.NewInternal("Failed to register user", err)
	}

	return &RegisterResult{
		Token:        token,
		Name:         user.Name,
		PasswordHash: passwordHash,
	}, nil
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.NewValidation("Bad Request! Invalid credentials")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperror.NewInternal("Failed to login", err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("User not found")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperror.NewAuth("Invalid password")
	}

	token, err := auth.IssueToken(user.Email, s.jwtSecret)
	if err != nil {
		return nil, apperror.NewInternal("Failed to login", err)
	}

	return &LoginResult{Token: token, Name: user.Name}, nil
}

// UpdatePassword looks the account up by display name, not by the
// session subject, matching the existing contract.
func (s *authService) UpdatePassword(name, oldPassword, newPassword string) error {
	if name == "" || oldPassword == "" || newPassword == "" {
		return apperror.NewValidation("Bad Request")
	}

	user, err := s.userRepo.FindByName(name)
	if err != nil {
		return apperror.NewInternal("Failed to update password", err)
	}
	if user == nil {
		return apperror.NewNotFound("User not found")
	}

	if !auth.CheckPassword(user.PasswordHash, oldPassword) {
		return apperror.NewAuth("Invalid old password")
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal("Failed to update password", err)
	}

	user.PasswordHash = passwordHash
	if err := s.userRepo.Update(user); err != nil {
		return apperror.NewInternal("Failed to update password", err)
	}
	return nil
}
