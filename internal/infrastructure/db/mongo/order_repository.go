package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketline/commerce-system/internal/core/domain"
)

const ordersCollection = "orders"

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderItem struct {
	ProductID string  `bson:"product_id"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
}

type mongoOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrderNumber   string             `bson:"order_number"`
	ShopID        string             `bson:"shop_id"`
	SalespersonID string             `bson:"salesperson_id"`
	DistributorID string             `bson:"distributor_id"`
	TotalAmount   float64            `bson:"total_amount"`
	Notes         string             `bson:"notes,omitempty"`
	Status        string             `bson:"status"`
	Items         []mongoOrderItem   `bson:"items"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *MongoOrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	items := make([]mongoOrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, mongoOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	doc := mongoOrder{
		OrderNumber:   o.OrderNumber,
		ShopID:        o.ShopID,
		SalespersonID: o.SalespersonID,
		DistributorID: o.DistributorID,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		Status:        string(o.Status),
		Items:         items,
		CreatedAt:     o.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *o
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(mo.Items))
	for _, item := range mo.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &domain.Order{
		ID:            mo.ID.Hex(),
		OrderNumber:   mo.OrderNumber,
		ShopID:        mo.ShopID,
		SalespersonID: mo.SalespersonID,
		DistributorID: mo.DistributorID,
		TotalAmount:   mo.TotalAmount,
		Notes:         mo.Notes,
		Status:        domain.OrderStatus(mo.Status),
		Items:         items,
		CreatedAt:     unixToTime(mo.CreatedAt),
	}, nil
}
