package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketline/commerce-system/internal/core/domain"
)

const productsCollection = "products"

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Stock       int                `bson:"stock"`
	SKU         string             `bson:"sku"`
	Images      []string           `bson:"images"`
	AdminID     string             `bson:"admin_id"`
	CreatedAt   int64              `bson:"created_at"`
}

// Create inserts the product. The unique index on sku maps duplicate
// catalog entries to domain.ErrProductExists.
func (r *MongoProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := mongoProduct{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		SKU:         p.SKU,
		Images:      p.Images,
		AdminID:     p.AdminID,
		CreatedAt:   p.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"sku": sku}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	return &domain.Product{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Description: mp.Description,
		Price:       mp.Price,
		Category:    mp.Category,
		Stock:       mp.Stock,
		SKU:         mp.SKU,
		Images:      mp.Images,
		AdminID:     mp.AdminID,
		CreatedAt:   unixToTime(mp.CreatedAt),
	}, nil
}
