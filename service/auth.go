package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth registers users and signs them in.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth backed by the given user store and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (i.Authenticator, error) {
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

func (a *Auth) Register(username, password string) error {
	userConfig := identity.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := identity.NewUser(userConfig)
	if err != nil {
		return err
	}

	err = a.userRepo.Save(user)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Registered user: %s", user.Username))
	return nil
}

func (a *Auth) SignIn(username, password string) (*identity.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		a.logger.Warning(fmt.Sprintf("Failed sign-in attempt for user: %s", username))
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
