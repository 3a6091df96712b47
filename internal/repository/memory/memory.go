// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sync"

	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
)

// DB holds users and logs behind one mutex. Users are kept in insertion
// order so List is stable, like a natural-order collection scan.
type DB struct {
	mu       sync.Mutex
	userIDs  []string
	users    map[string]domain.User
	logs     map[string]*domain.Log
	failWith error
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users: make(map[string]domain.User),
		logs:  make(map[string]*domain.Log),
	}
}

// Ensure interfaces are met.
var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.LogRepository = (*LogRepo)(nil)

// Users returns a UserRepository view of db.
func (db *DB) Users() *UserRepo { return &UserRepo{db: db} }

// Logs returns a LogRepository view of db.
func (db *DB) Logs() *LogRepo { return &LogRepo{db: db} }

// FailWith makes every subsequent call return err. Pass nil to recover.
func (db *DB) FailWith(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failWith = err
}

// --- UserRepository ---

// UserRepo implements repository.UserRepository over a DB.
type UserRepo struct {
	db *DB
}

// Create stores user under its ID.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return db.failWith
	}
	if user.ID == "" || user.Username == "" {
		return errors.New("user id and username are required")
	}
	if _, ok := db.users[user.ID]; ok {
		return repository.ErrDuplicateID
	}
	db.users[user.ID] = *user
	db.userIDs = append(db.userIDs, user.ID)
	return nil
}

// GetByID returns the user with the given ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return nil, db.failWith
	}
	u, ok := db.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

// Exists reports whether id is taken.
func (r *UserRepo) Exists(ctx context.Context, id string) (bool, error) {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return false, db.failWith
	}
	_, ok := db.users[id]
	return ok, nil
}

// List returns all users in insertion order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return nil, db.failWith
	}
	out := make([]domain.User, 0, len(db.userIDs))
	for _, id := range db.userIDs {
		out = append(out, db.users[id])
	}
	return out, nil
}

// --- LogRepository ---

// LogRepo implements repository.LogRepository over a DB.
type LogRepo struct {
	db *DB
}

// Create stores an empty log under its ID.
func (r *LogRepo) Create(ctx context.Context, l *domain.Log) error {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return db.failWith
	}
	if l.ID == "" {
		return errors.New("log id is required")
	}
	if _, ok := db.logs[l.ID]; ok {
		return repository.ErrDuplicateID
	}
	stored := cloneLog(l)
	stored.Count = len(stored.Entries)
	db.logs[l.ID] = stored
	return nil
}

// GetByID returns a copy of the log with the given ID.
func (r *LogRepo) GetByID(ctx context.Context, id string) (*domain.Log, error) {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return nil, db.failWith
	}
	l, ok := db.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneLog(l), nil
}

// AppendEntry appends entry and updates the count under the lock.
func (r *LogRepo) AppendEntry(ctx context.Context, id string, entry domain.Exercise) (*domain.Log, error) {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failWith != nil {
		return nil, db.failWith
	}
	l, ok := db.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	l.Entries = append(l.Entries, entry)
	l.Count = len(l.Entries)
	return cloneLog(l), nil
}

// cloneLog copies l so callers can't mutate stored entries.
func cloneLog(l *domain.Log) *domain.Log {
	c := *l
	c.Entries = make([]domain.Exercise, len(l.Entries))
	copy(c.Entries, l.Entries)
	return &c
}
