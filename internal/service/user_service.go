package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrIDSpaceExhausted = errors.New("could not find a free user id")
)

// DefaultMaxIDAttempts bounds id regeneration when the config leaves it unset.
const DefaultMaxIDAttempts = 10

// UserService registers and lists users.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type createUserInput struct {
	Username string `validate:"trimmed_required"`
}

// userService implements the UserService interface.
type userService struct {
	userRepo    repository.UserRepository
	logRepo     repository.LogRepository
	ids         IDGenerator
	maxAttempts int
	validate    *validator.Validate
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, logRepo repository.LogRepository, ids IDGenerator, maxAttempts int) UserService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxIDAttempts
	}
	return &userService{
		userRepo:    userRepo,
		logRepo:     logRepo,
		ids:         ids,
		maxAttempts: maxAttempts,
		validate:    newValidator(),
	}
}

// CreateUser draws ids until a free one is found, then stores the empty log
// and the user under it. The log goes first so any visible user has a log.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	in := createUserInput{Username: strings.TrimSpace(username)}
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		user := &domain.User{ID: s.ids.NewID(), Username: in.Username}

		taken, err := s.userRepo.Exists(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("checking user id: %w", err)
		}
		if taken {
			continue
		}

		err = s.logRepo.Create(ctx, domain.NewLog(user))
		if errors.Is(err, repository.ErrDuplicateID) {
			continue // lost a race for this id
		}
		if err != nil {
			return nil, fmt.Errorf("creating log: %w", err)
		}

		err = s.userRepo.Create(ctx, user)
		if errors.Is(err, repository.ErrDuplicateID) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		return user, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrIDSpaceExhausted, s.maxAttempts)
}

// ListUsers returns every user in store order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
