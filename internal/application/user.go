package application

import (
	"errors"
	"time"

	"github.com/citizenconnect/complaints-api/internal/api/middleware"
	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenLifetime = 7 * 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Login verifies the staff member's password and issues a signed token. The
// same message covers unknown email and wrong password.
func (s *UserService) Login(email, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(&u, tokenLifetime)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	return s.Repos.User.GetByID(id)
}
