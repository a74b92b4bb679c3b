package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Repository defines read access to the F&B catalog collections plus
// persistence for menu engineering analysis snapshots. The catalog itself
// is owned and mutated by the surrounding CRUD screens; this service only
// reads snapshots of it.
type Repository interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SaveAnalysisSnapshot(ctx context.Context, snapshot models.AnalysisSnapshot) error
	LatestAnalysisSnapshot(ctx context.Context) (*models.AnalysisSnapshot, error)
}

// MongoDBRepository implements Repository against MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// ListArticles loads the full purchasing article collection.
func (r *MongoDBRepository) ListArticles(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	if err := r.loadAll(ctx, "articles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIngredients loads the full ingredient collection.
func (r *MongoDBRepository) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := r.loadAll(ctx, "ingredients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecipes loads the full recipe collection.
func (r *MongoDBRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := r.loadAll(ctx, "recipes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts loads the full product collection.
func (r *MongoDBRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := r.loadAll(ctx, "products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches a single product by id.
func (r *MongoDBRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

// SaveAnalysisSnapshot stores the outcome of one menu engineering run.
func (r *MongoDBRepository) SaveAnalysisSnapshot(ctx context.Context, snapshot models.AnalysisSnapshot) error {
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection("menu_analyses").InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert analysis snapshot: %w", err)
	}
	return nil
}

// LatestAnalysisSnapshot returns the most recently stored analysis run.
func (r *MongoDBRepository) LatestAnalysisSnapshot(ctx context.Context) (*models.AnalysisSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var snapshot models.AnalysisSnapshot
	err := r.collection("menu_analyses").FindOne(ctx, bson.M{}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest analysis snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *MongoDBRepository) loadAll(ctx context.Context, collName string, out interface{}) error {
	cursor, err := r.collection(collName).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collName, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collName, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
