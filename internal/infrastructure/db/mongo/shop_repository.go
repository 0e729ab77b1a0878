package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketline/commerce-system/internal/core/domain"
)

const shopsCollection = "shops"

type MongoShopRepository struct {
	coll *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *MongoShopRepository {
	return &MongoShopRepository{coll: db.Collection(shopsCollection)}
}

type mongoShop struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	OwnerName     string             `bson:"owner_name"`
	GSTNumber     string             `bson:"gst_number,omitempty"`
	PANNumber     string             `bson:"pan_number,omitempty"`
	Phone         string             `bson:"phone"`
	Email         string             `bson:"email,omitempty"`
	Address       string             `bson:"address"`
	City          string             `bson:"city"`
	State         string             `bson:"state"`
	Pincode       string             `bson:"pincode"`
	SalespersonID string             `bson:"salesperson_id,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *MongoShopRepository) Create(ctx context.Context, s *domain.Shop) (*domain.Shop, error) {
	doc := mongoShop{
		Name:          s.Name,
		OwnerName:     s.OwnerName,
		GSTNumber:     s.GSTNumber,
		PANNumber:     s.PANNumber,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		City:          s.City,
		State:         s.State,
		Pincode:       s.Pincode,
		SalespersonID: s.SalespersonID,
		CreatedAt:     s.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert shop: %w", err)
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
