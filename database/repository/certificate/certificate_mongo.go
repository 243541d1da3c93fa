package certificateRepo

import (
	"context"
	"fmt"
	"time"

	"serenispa/database"
	"serenispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCertificateRepo implements CertificateRepository using MongoDB.
type MongoCertificateRepo struct {
	coll *mongo.Collection
}

// NewMongoCertificateRepo creates a new instance of CertificateRepository using MongoDB.
func NewMongoCertificateRepo() CertificateRepository {
	coll := database.Collection("certificates")
	repo := &MongoCertificateRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create certificate indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique index on certificateNumber closes the read-increment-write race in
// number generation: a losing writer gets a duplicate key and retries.
func (r *MongoCertificateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "certificateNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "buyer.email", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new certificate document.
func (r *MongoCertificateRepo) Create(cert *models.Certificate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, cert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// Latest returns the most recently created certificate, or nil when the
// collection is empty.
func (r *MongoCertificateRepo) Latest() (*models.Certificate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var cert models.Certificate
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&cert); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest certificate: %w", err)
	}
	return &cert, nil
}

// ListCreatedSince retrieves certificates created at or after from, newest first.
func (r *MongoCertificateRepo) ListCreatedSince(from time.Time) ([]models.Certificate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if !from.IsZero() {
		query["createdAt"] = bson.M{"$gte": from}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve certificates: %w", err)
	}
	defer cursor.Close(ctx)

	var certs []models.Certificate
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, fmt.Errorf("failed to decode certificates: %w", err)
	}
	return certs, nil
}

// ListByBuyerEmail retrieves a buyer's certificates, newest first.
func (r *MongoCertificateRepo) ListByBuyerEmail(email string) ([]models.Certificate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"buyer.email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve certificates for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var certs []models.Certificate
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, fmt.Errorf("failed to decode certificates: %w", err)
	}
	return certs, nil
}

// UpdateStatus sets the status of the certificate with the given id.
func (r *MongoCertificateRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update certificate with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
