// Package mongo implementa los repositorios sobre MongoDB (driver oficial v2).
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jhoicas/startnet-api/pkg/config"
)

// Nombres de colecciones.
const (
	collUsers         = "users"
	collEntrepreneurs = "entrepreneur_profiles"
	collInvestors     = "investor_profiles"
	collStartups      = "startups"
)

// Store cliente conectado y base de datos de la aplicación.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre el cliente, verifica con Ping y selecciona la base de datos.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Database base de datos seleccionada.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Close desconecta el cliente.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes crea los índices únicos y de consulta. Es idempotente.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("ux_users_email")},
		},
		collEntrepreneurs: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("ux_entrepreneur_profiles_user")},
		},
		collInvestors: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("ux_investor_profiles_user")},
			{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("ix_investor_profiles_created")},
		},
		collStartups: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("ix_startups_user")},
			{Keys: bson.D{{Key: "industry", Value: 1}}, Options: options.Index().SetName("ix_startups_industry")},
			{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("ix_startups_created")},
		},
	}
	for coll, models := range specs {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo indexes %s: %w", coll, err)
		}
	}
	return nil
}
