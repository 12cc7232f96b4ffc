// File: database/repository/tenant/crud.go
package tenantRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"islandpulse/models"
	"islandpulse/utils"
)

func (r *mongoTenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if tenant.Slug == "" {
		tenant.Slug = utils.CreateSlug(tenant.Name)
	}
	now := utils.UnixNow()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, tenant)
	return err
}

func (r *mongoTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tenant models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *mongoTenantRepo) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tenant models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *mongoTenantRepo) UpdateHours(ctx context.Context, id string, hours models.BusinessHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"appointments.hours": hours,
		"updatedAt":          utils.UnixNow(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
