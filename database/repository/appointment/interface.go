// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"islandpulse/config"
	"islandpulse/database"
	"islandpulse/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error)
	GetByDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status models.AppointmentStatus, actorID string) error

	// FetchAppointments implements the calendar engine's read model:
	// appointments whose scheduled date falls within [from, to).
	FetchAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]models.Appointment, error)

	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
