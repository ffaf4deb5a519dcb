package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("User already exists")
		}
		return errors.Dependency("Failed to create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Dependency("Failed to get user", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.GetByID(ctx, entity.UserID(email))
}

func (r *userRepository) Search(ctx context.Context, term string) ([]*entity.User, error) {
	filter := bson.M{}
	if term != "" {
		filter["$or"] = bson.A{
			bson.M{"name": contains(term)},
			bson.M{"email": contains(term)},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	users, err := findAll[entity.User](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, errors.Dependency("Failed to search users", err)
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id, role string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return errors.Dependency("Failed to update user role", err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}
