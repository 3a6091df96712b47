package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNS = "tracker.users"

func TestMongoUserRepositoryCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("inserted", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(ctx, &domain.User{ID: "123", Username: "alice"})
		assert.NoError(mt, err)
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := repo.Create(ctx, &domain.User{ID: "123", Username: "alice"})
		assert.ErrorIs(mt, err, repository.ErrDuplicateID)
	})

	mt.Run("missing fields", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		err := repo.Create(ctx, &domain.User{Username: "alice"})
		assert.Error(mt, err)
	})
}

func TestMongoUserRepositoryGetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "123"},
			{Key: "username", Value: "alice"},
		}))

		user, err := repo.GetByID(ctx, "123")
		require.NoError(mt, err)
		assert.Equal(mt, domain.User{ID: "123", Username: "alice"}, *user)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "404")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestMongoUserRepositoryExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("taken", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "123"},
		}))

		ok, err := repo.Exists(ctx, "123")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("free", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		ok, err := repo.Exists(ctx, "123")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "boom",
		}))

		_, err := repo.Exists(ctx, "123")
		assert.Error(mt, err)
	})
}

func TestMongoUserRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("all users", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		first := mtest.CreateCursorResponse(1, testNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "1"}, {Key: "username", Value: "alice"}},
			bson.D{{Key: "_id", Value: "2"}, {Key: "username", Value: "bob"}},
		)
		last := mtest.CreateCursorResponse(0, testNS, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		users, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []domain.User{
			{ID: "1", Username: "alice"},
			{ID: "2", Username: "bob"},
		}, users)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		users, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})
}
