package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artizans_back_end/internal/config"
)

// Collection names as created by the storefront deployments.
const (
	ProductsCollection = "product-data"
	OrdersCollection   = "orders"
	ReviewsCollection  = "reviews"
	UsersCollection    = "user-data"
)

// Mongo wraps the single shared client. It is constructed once at startup
// and handed to every handler group, never recreated per request.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and pings the primary before returning the handle.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("✅ Connected to MongoDB:", cfg.MongoDBName)
	return &Mongo{client: client, db: client.Database(cfg.MongoDBName)}, nil
}

// NewWithDatabase builds a handle around an already connected database.
// Used by tests running against a mock deployment.
func NewWithDatabase(db *mongo.Database) *Mongo {
	return &Mongo{client: db.Client(), db: db}
}

func (m *Mongo) Products() *mongo.Collection { return m.db.Collection(ProductsCollection) }
func (m *Mongo) Orders() *mongo.Collection   { return m.db.Collection(OrdersCollection) }
func (m *Mongo) Reviews() *mongo.Collection  { return m.db.Collection(ReviewsCollection) }
func (m *Mongo) Users() *mongo.Collection    { return m.db.Collection(UsersCollection) }

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
