// Package repository defines the storage interfaces and their MongoDB
// implementations. Services depend on the interfaces only; partial updates
// travel as plain maps so nothing above this package speaks bson.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/models"
)

// UserRepository persists identity records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// FindByEmail returns nil, nil when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindDoctors returns every user with role Doctor.
	FindDoctors(ctx context.Context) ([]models.User, error)
}

// AppointmentRepository persists bookings. Each write is a single atomic
// document operation; no method spans multiple documents.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *models.Appointment) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	// FindByID returns nil, nil when no appointment has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	// Update applies fields as a partial update and returns the updated
	// record, or nil, nil when the id is unknown.
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Appointment, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
