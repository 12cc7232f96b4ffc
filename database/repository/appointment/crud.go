// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"islandpulse/models"
	"islandpulse/utils"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, appointment)
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	filter := bson.M{"id": id, "tenantId": tenantID}
	if err := r.coll.FindOne(ctx, filter).Decode(&apt); err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenantId": tenantID, "schedule.date": date}
	opts := options.Find().SetSort(bson.D{{Key: "schedule.start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, tenantID, id string, status models.AppointmentStatus, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := utils.UnixNow()
	entry := models.AppointmentTimelineEntry{
		Type:    "status_change",
		At:      now,
		ActorID: actorID,
		Payload: map[string]any{"status": string(status)},
	}

	filter := bson.M{"id": id, "tenantId": tenantID}
	update := bson.M{
		"$set":  bson.M{"status": status, "updatedAt": now},
		"$push": bson.M{"timeline": entry},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FetchAppointments returns appointments whose scheduled date lies in
// [from, to), in chronological order. Date filtering happens on the
// "YYYY-MM-DD" string, which sorts lexicographically.
func (r *mongoAppointmentRepo) FetchAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId": tenantID,
		"schedule.date": bson.M{
			"$gte": utils.DateString(from),
			"$lt":  utils.DateString(to),
		},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "schedule.date", Value: 1},
		{Key: "schedule.start", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
