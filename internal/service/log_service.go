package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// LogService records exercises and serves filtered views of a user's log.
type LogService interface {
	AddExercise(ctx context.Context, userID string, in AddExerciseInput) (*ExerciseRecord, error)
	GetLog(ctx context.Context, userID string, q LogQuery) (*domain.Log, error)
}

// AddExerciseInput is the raw exercise as submitted. Duration and Date are
// parsed by the service.
type AddExerciseInput struct {
	Description string `validate:"trimmed_required"`
	Duration    string `validate:"trimmed_required"`
	Date        string // empty means today
}

// ExerciseRecord is the flat result of AddExercise.
type ExerciseRecord struct {
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        string
}

// logService implements the LogService interface.
type logService struct {
	userRepo repository.UserRepository
	logRepo  repository.LogRepository
	now      func() time.Time
	validate *validator.Validate
}

// NewLogService creates a new instance of logService. now supplies "today"
// for exercises submitted without a date; nil means time.Now.
func NewLogService(userRepo repository.UserRepository, logRepo repository.LogRepository, now func() time.Time) LogService {
	if now == nil {
		now = time.Now
	}
	return &logService{
		userRepo: userRepo,
		logRepo:  logRepo,
		now:      now,
		validate: newValidator(),
	}
}

// AddExercise validates the input and appends it to the user's log.
func (s *logService) AddExercise(ctx context.Context, userID string, in AddExerciseInput) (*ExerciseRecord, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	duration, ok := parseLeadingInt(in.Duration)
	if !ok {
		return nil, invalid("duration %q is not a number", in.Duration)
	}

	date := domain.FormatDate(s.now())
	if strings.TrimSpace(in.Date) != "" {
		normalized, err := domain.NormalizeDate(in.Date)
		if err != nil {
			return nil, invalid("date %q is not a valid date", in.Date)
		}
		date = normalized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	entry := domain.Exercise{
		Description: strings.TrimSpace(in.Description),
		Duration:    duration,
		Date:        date,
	}
	if _, err := s.logRepo.AppendEntry(ctx, userID, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("appending exercise: %w", err)
	}

	return &ExerciseRecord{
		UserID:      user.ID,
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
	}, nil
}

// GetLog returns the user's log with entries filtered by q. Count is the
// stored total, not the length of the filtered entries.
func (s *logService) GetLog(ctx context.Context, userID string, q LogQuery) (*domain.Log, error) {
	filter, err := parseLogQuery(q)
	if err != nil {
		return nil, err
	}

	l, err := s.logRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading log: %w", err)
	}

	l.Entries = filter.apply(l.Entries)
	return l, nil
}
