package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const logCollectionName = "logs"

// mongoLogRepository implements repository.LogRepository
type mongoLogRepository struct {
	collection *mongo.Collection
}

// NewMongoLogRepository creates a new Log repository backed by MongoDB.
func NewMongoLogRepository(db *mongo.Database) repository.LogRepository {
	return &mongoLogRepository{
		collection: db.Collection(logCollectionName),
	}
}

// Create inserts an (empty) log for a newly registered user.
func (r *mongoLogRepository) Create(ctx context.Context, l *domain.Log) error {
	if l.ID == "" {
		return errors.New("log id is required")
	}
	if l.Entries == nil {
		l.Entries = []domain.Exercise{} // store [] rather than null
	}
	l.Count = len(l.Entries)

	_, err := r.collection.InsertOne(ctx, l)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateID
		}
		return err
	}
	return nil
}

// GetByID retrieves a log by its (user) ID.
func (r *mongoLogRepository) GetByID(ctx context.Context, id string) (*domain.Log, error) {
	var l domain.Log
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if l.Entries == nil {
		l.Entries = []domain.Exercise{}
	}
	return &l, nil
}

// AppendEntry pushes the entry and increments count in a single update,
// so readers never see count out of step with the entries.
func (r *mongoLogRepository) AppendEntry(ctx context.Context, id string, entry domain.Exercise) (*domain.Log, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$push": bson.M{"log": entry},
		"$inc":  bson.M{"count": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l domain.Log
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
