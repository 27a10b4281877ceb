package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps the cart snapshot in a carts collection keyed by owner,
// for deployments where the client core runs behind a BFF.
type MongoStore struct {
	collection *mongo.Collection
	owner      string
}

type cartDocument struct {
	Owner     string     `bson:"owner_id"`
	Items     []wireItem `bson:"items"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

func NewMongoStore(db *mongo.Database, owner string) *MongoStore {
	return &MongoStore{
		collection: db.Collection("carts"),
		owner:      owner,
	}
}

func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client.Database(dbName), nil
}

func (m *MongoStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	var doc cartDocument
	err := m.collection.FindOne(ctx, bson.M{"owner_id": m.owner}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]domain.LineItem, 0, len(doc.Items))
	for _, w := range doc.Items {
		if w.Quantity <= 0 {
			continue
		}
		items = append(items, domain.LineItem{
			ProductID: w.ProductID,
			Name:      w.Name,
			UnitPrice: w.UnitPrice,
			Image:     w.Image,
			Quantity:  w.Quantity,
			Color:     variantString(w.Color),
			Size:      variantString(w.Size),
		})
	}
	return items, nil
}

func (m *MongoStore) Save(ctx context.Context, items []domain.LineItem) error {
	wire := make([]wireItem, len(items))
	for i, it := range items {
		wire[i] = wireItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Color:     variantPtr(it.Color),
			Size:      variantPtr(it.Size),
		}
	}

	filter := bson.M{"owner_id": m.owner}
	update := bson.M{"$set": cartDocument{
		Owner:     m.owner,
		Items:     wire,
		UpdatedAt: time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}
	return nil
}
