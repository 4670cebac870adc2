package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/devjobs/backend/internal/auth"
	"github.com/devjobs/backend/internal/dtos"
	"github.com/devjobs/backend/internal/models"
	"github.com/devjobs/backend/internal/store"
)

// UserService handles company account registration and login.
type UserService struct {
	users  store.UserStore
	tokens *auth.Tokens
}

func NewUserService(users store.UserStore, tokens *auth.Tokens) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a company account and returns it with a fresh token.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, string, error) {
	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:       req.Email,
		Password:    hash,
		CompanyName: req.CompanyName,
		Role:        "company",
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token. Unknown
// email and wrong password are deliberately indistinguishable.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
