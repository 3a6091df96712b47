package service_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"alcyxob/exercise-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceIDs hands out ids from a fixed list, repeating the last one.
type sequenceIDs struct {
	ids   []string
	calls int
}

func (s *sequenceIDs) NewID() string {
	i := min(s.calls, len(s.ids)-1)
	s.calls++
	return s.ids[i]
}

var decimalID = regexp.MustCompile(`^[0-9]{1,9}$`)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and empty log", func(t *testing.T) {
		db := memory.New()
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"123"}}, 3)

		user, err := us.CreateUser(ctx, "  alice ")
		require.NoError(t, err)
		assert.Equal(t, domain.User{ID: "123", Username: "alice"}, *user)

		l, err := db.Logs().GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "alice", l.Username)
		assert.Equal(t, 0, l.Count)
		assert.Empty(t, l.Entries)
	})

	t.Run("duplicate usernames are allowed", func(t *testing.T) {
		db := memory.New()
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1", "2"}}, 3)

		a, err := us.CreateUser(ctx, "alice")
		require.NoError(t, err)
		b, err := us.CreateUser(ctx, "alice")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("long username is kept whole", func(t *testing.T) {
		db := memory.New()
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1"}}, 1)
		name := strings.Repeat("a", 4096)

		user, err := us.CreateUser(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, name, user.Username)
	})

	t.Run("retries on collision", func(t *testing.T) {
		db := memory.New()
		require.NoError(t, db.Users().Create(ctx, &domain.User{ID: "1", Username: "taken"}))
		ids := &sequenceIDs{ids: []string{"1", "1", "7"}}
		us := service.NewUserService(db.Users(), db.Logs(), ids, 5)

		user, err := us.CreateUser(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "7", user.ID)
		assert.Equal(t, 3, ids.calls)
	})

	t.Run("retries when only a log holds the id", func(t *testing.T) {
		db := memory.New()
		require.NoError(t, db.Logs().Create(ctx, &domain.Log{ID: "1", Username: "orphan"}))
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1", "2"}}, 5)

		user, err := us.CreateUser(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "2", user.ID)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		db := memory.New()
		require.NoError(t, db.Users().Create(ctx, &domain.User{ID: "1", Username: "taken"}))
		ids := &sequenceIDs{ids: []string{"1"}}
		us := service.NewUserService(db.Users(), db.Logs(), ids, 4)

		_, err := us.CreateUser(ctx, "bob")
		assert.ErrorIs(t, err, service.ErrIDSpaceExhausted)
		assert.Equal(t, 4, ids.calls)
	})

	t.Run("blank username", func(t *testing.T) {
		db := memory.New()
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1"}}, 3)

		for _, name := range []string{"", "   "} {
			_, err := us.CreateUser(ctx, name)
			assert.ErrorIs(t, err, service.ErrValidationFailed)
		}
		users, err := db.Users().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("store error", func(t *testing.T) {
		db := memory.New()
		boom := errors.New("connection reset")
		db.FailWith(boom)
		us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1"}}, 3)

		_, err := us.CreateUser(ctx, "alice")
		assert.ErrorIs(t, err, boom)
	})
}

func TestCreateUserIDsAreDistinctDecimals(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	us := service.NewUserService(db.Users(), db.Logs(), service.NewRandomIDGenerator(9), 0)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		user, err := us.CreateUser(ctx, "user")
		require.NoError(t, err)
		assert.Regexp(t, decimalID, user.ID)
		assert.False(t, seen[user.ID], "duplicate id %s", user.ID)
		seen[user.ID] = true
	}
}

func TestCreateUserExhaustsSmallIDSpace(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	// One digit gives the ids 0..8.
	us := service.NewUserService(db.Users(), db.Logs(), service.NewRandomIDGenerator(1), 1000)

	for i := 0; i < 9; i++ {
		_, err := us.CreateUser(ctx, "user")
		require.NoError(t, err)
	}
	_, err := us.CreateUser(ctx, "one too many")
	assert.ErrorIs(t, err, service.ErrIDSpaceExhausted)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	us := service.NewUserService(db.Users(), db.Logs(), &sequenceIDs{ids: []string{"1", "2"}}, 3)

	users, err := us.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	_, err = us.CreateUser(ctx, "alice")
	require.NoError(t, err)
	_, err = us.CreateUser(ctx, "bob")
	require.NoError(t, err)

	users, err = us.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{ID: "1", Username: "alice"}, {ID: "2", Username: "bob"}}, users)

	db.FailWith(errors.New("down"))
	_, err = us.ListUsers(ctx)
	assert.Error(t, err)
}

func TestRandomIDGenerator(t *testing.T) {
	gen := service.NewRandomIDGenerator(9)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		assert.Regexp(t, decimalID, id)
		if len(id) > 1 {
			assert.NotEqual(t, byte('0'), id[0], "id %s is zero padded", id)
		}
	}
}
