// File: database/repository/tenant/interface.go
package tenantRepo

import (
	"context"

	"islandpulse/config"
	"islandpulse/database"
	"islandpulse/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	UpdateHours(ctx context.Context, id string, hours models.BusinessHours) error
}

type mongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs a new MongoDB TenantRepository.
func NewMongoTenantRepo() TenantRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoTenantRepo{
		coll: db.Collection("tenants"),
	}
}
