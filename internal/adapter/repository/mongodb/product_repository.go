package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = entity.NewID()
	}

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Product already exists")
		}
		return errors.Dependency("Failed to create product", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Dependency("Failed to get product", err)
	}
	return &product, nil
}

func productFilter(q repository.ProductQuery) bson.M {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Category != "" {
		filter["category"] = equalFold(q.Category)
	}
	if q.VendorEmail != "" {
		filter["vendorEmail"] = q.VendorEmail
	}

	if len(q.PriceWindows) > 0 {
		windows := bson.A{}
		for _, w := range q.PriceWindows {
			windows = append(windows, bson.M{
				"prices": bson.M{
					"$elemMatch": bson.M{"date": bson.M{"$gte": w.From, "$lt": w.To}},
				},
			})
		}
		filter["$and"] = windows
	}
	return filter
}

func (r *productRepository) Search(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, int64, error) {
	filter := productFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Dependency("Failed to count products", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(q.Offset))
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	products, err := findAll[entity.Product](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, 0, errors.Dependency("Failed to search products", err)
	}
	return products, total, nil
}

// Update sets the editable fields and pushes the new price in one document
// write, which MongoDB applies atomically.
func (r *productRepository) Update(ctx context.Context, id string, update repository.ProductUpdate) error {
	change := bson.M{
		"$set": bson.M{
			"itemName":        update.ItemName,
			"itemDescription": update.ItemDescription,
			"marketName":      update.MarketName,
			"productImage":    update.ProductImage,
			"updatedAt":       time.Now(),
		},
	}
	if update.NewPrice != nil {
		change["$push"] = bson.M{"prices": update.NewPrice}
	}

	res, err := r.coll.UpdateByID(ctx, id, change)
	if err != nil {
		return errors.Dependency("Failed to update product", err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *productRepository) Moderate(ctx context.Context, id string, moderation repository.Moderation) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":            moderation.Status,
			"rejectionReason":   moderation.RejectionReason,
			"rejectionFeedback": moderation.RejectionFeedback,
			"updatedAt":         time.Now(),
		},
	})
	if err != nil {
		return errors.Dependency("Failed to update product status", err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Dependency("Failed to delete product", err)
	}
	if res.DeletedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}
