// Package directory resolves a booking's free-text doctor reference
// (department + first and last name) to exactly one doctor identity.
package directory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/models"
	"github.com/medicore/hospital-api/internal/repository"
)

// Resolve picks the single doctor matching department and both name fields
// from a snapshot of the identity store. Zero matches fail with NotFound.
// More than one match fails with Conflict: the system refuses to guess among
// duplicate doctor names in the same department and tells the caller to
// disambiguate by phone or email.
func Resolve(doctors []models.User, department, firstName, lastName string) (primitive.ObjectID, error) {
	var matches []models.User
	for _, d := range doctors {
		if d.Role != models.RoleDoctor {
			continue
		}
		if d.DoctorDepartment == department && d.FirstName == firstName && d.LastName == lastName {
			matches = append(matches, d)
		}
	}

	switch len(matches) {
	case 0:
		return primitive.NilObjectID, models.ErrNoSuchDoctor()
	case 1:
		return matches[0].ID, nil
	default:
		return primitive.NilObjectID, models.ErrDoctorConflict()
	}
}

// Resolver wires Resolve to the identity store.
type Resolver struct {
	users repository.UserRepository
}

func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// ResolveDoctor loads the doctor roster and resolves against it.
func (r *Resolver) ResolveDoctor(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error) {
	doctors, err := r.users.FindDoctors(ctx)
	if err != nil {
		return primitive.NilObjectID, models.NewInternalError("Failed to look up doctors")
	}
	return Resolve(doctors, department, firstName, lastName)
}
