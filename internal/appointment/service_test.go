package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/models"
)

func validBookInput() BookInput {
	return BookInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@x.com",
		Phone:           "9876543210",
		AdharID:         "123456789012",
		DOB:             "1990-01-01",
		Gender:          "Female",
		AppointmentDate: "2025-01-10",
		Department:      "Cardiology",
		DoctorFirstName: "John",
		DoctorLastName:  "Smith",
		Address:         "12 Elm St",
		HasVisited:      false,
	}
}

func TestBook_Success(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	repo := &mockAppointmentRepo{}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error) {
			assert.Equal(t, "Cardiology", department)
			assert.Equal(t, "John", firstName)
			assert.Equal(t, "Smith", lastName)
			return doctorID, nil
		},
	}
	svc := NewService(repo, resolver)

	apt, err := svc.Book(context.Background(), patientID, validBookInput())

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, apt.Status)
	assert.False(t, apt.HasVisited)
	assert.Equal(t, doctorID, apt.DoctorID)
	assert.Equal(t, patientID, apt.PatientID)
	// The doctor name is embedded as a snapshot of the input.
	assert.Equal(t, "John", apt.Doctor.FirstName)
	assert.Equal(t, "Smith", apt.Doctor.LastName)
	assert.Equal(t, "2025-01-10", apt.AppointmentDate.Format("2006-01-02"))
}

func TestBook_MissingFieldFailsBeforeLookup(t *testing.T) {
	fields := []func(*BookInput){
		func(in *BookInput) { in.FirstName = "" },
		func(in *BookInput) { in.LastName = "" },
		func(in *BookInput) { in.Email = "" },
		func(in *BookInput) { in.Phone = "" },
		func(in *BookInput) { in.AdharID = "" },
		func(in *BookInput) { in.DOB = "" },
		func(in *BookInput) { in.Gender = "" },
		func(in *BookInput) { in.AppointmentDate = "" },
		func(in *BookInput) { in.Department = "" },
		func(in *BookInput) { in.DoctorFirstName = "" },
		func(in *BookInput) { in.DoctorLastName = "" },
		func(in *BookInput) { in.Address = "" },
	}

	for _, clear := range fields {
		repo := &mockAppointmentRepo{}
		resolver := &mockResolver{}
		svc := NewService(repo, resolver)

		in := validBookInput()
		clear(&in)

		_, err := svc.Book(context.Background(), primitive.NewObjectID(), in)

		assert.True(t, models.IsValidation(err))
		assert.Equal(t, 0, resolver.ResolveCalls, "doctor lookup must not run for invalid input")
		assert.Equal(t, 0, repo.CreateCalls)
	}
}

func TestBook_NoSuchDoctor(t *testing.T) {
	repo := &mockAppointmentRepo{}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error) {
			return primitive.NilObjectID, models.ErrNoSuchDoctor()
		},
	}
	svc := NewService(repo, resolver)

	_, err := svc.Book(context.Background(), primitive.NewObjectID(), validBookInput())

	assert.True(t, models.IsNotFound(err))
	assert.Equal(t, 0, repo.CreateCalls, "no record may be created on lookup failure")
}

func TestBook_DoctorConflict(t *testing.T) {
	repo := &mockAppointmentRepo{}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error) {
			return primitive.NilObjectID, models.ErrDoctorConflict()
		},
	}
	svc := NewService(repo, resolver)

	_, err := svc.Book(context.Background(), primitive.NewObjectID(), validBookInput())

	assert.True(t, models.IsConflict(err))
	assert.Contains(t, err.Error(), "Doctor Conflict")
	assert.Equal(t, 0, repo.CreateCalls)
}

func TestListAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockResolver{})

	appointments, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Len(t, appointments, 0)
}

func TestUpdate_UnknownID(t *testing.T) {
	repo := &mockAppointmentRepo{}
	svc := NewService(repo, &mockResolver{})

	status := "Accepted"
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), UpdateInput{Status: &status})

	assert.True(t, models.IsNotFound(err))
	assert.Equal(t, 0, repo.UpdateCalls, "unknown id must never create or update a record")
}

func TestUpdate_StatusTransition(t *testing.T) {
	id := primitive.NewObjectID()
	existing := &models.Appointment{ID: id, Status: models.StatusRejected}
	repo := &mockAppointmentRepo{
		FindByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.Appointment, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, gotID primitive.ObjectID, fields map[string]any) (*models.Appointment, error) {
			assert.Equal(t, models.StatusAccepted, fields["status"])
			updated := *existing
			updated.Status = models.StatusAccepted
			return &updated, nil
		},
	}
	svc := NewService(repo, &mockResolver{})

	// Rejected -> Accepted is allowed: status has no transition guard.
	status := "Accepted"
	updated, err := svc.Update(context.Background(), id, UpdateInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockAppointmentRepo{
		FindByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.Appointment, error) {
			return &models.Appointment{ID: id}, nil
		},
	}
	svc := NewService(repo, &mockResolver{})

	status := "Done"
	_, err := svc.Update(context.Background(), id, UpdateInput{Status: &status})

	assert.True(t, models.IsValidation(err))
	assert.Equal(t, 0, repo.UpdateCalls)
}

func TestUpdate_PartialFields(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockAppointmentRepo{
		FindByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.Appointment, error) {
			return &models.Appointment{ID: id}, nil
		},
		UpdateFunc: func(ctx context.Context, gotID primitive.ObjectID, fields map[string]any) (*models.Appointment, error) {
			assert.Equal(t, "0123456789", fields["phone"])
			assert.Equal(t, true, fields["hasVisited"])
			assert.NotContains(t, fields, "status")
			assert.NotContains(t, fields, "firstName")
			return &models.Appointment{ID: id, Phone: "0123456789", HasVisited: true}, nil
		},
	}
	svc := NewService(repo, &mockResolver{})

	phone := "0123456789"
	visited := true
	updated, err := svc.Update(context.Background(), id, UpdateInput{Phone: &phone, HasVisited: &visited})

	require.NoError(t, err)
	assert.True(t, updated.HasVisited)
}

func TestUpdate_NoFields(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockAppointmentRepo{
		FindByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.Appointment, error) {
			return &models.Appointment{ID: id}, nil
		},
	}
	svc := NewService(repo, &mockResolver{})

	_, err := svc.Update(context.Background(), id, UpdateInput{})

	assert.True(t, models.IsValidation(err))
}

func TestDelete_Idempotence(t *testing.T) {
	id := primitive.NewObjectID()
	deleted := false
	repo := &mockAppointmentRepo{
		DeleteFunc: func(ctx context.Context, gotID primitive.ObjectID) (bool, error) {
			if deleted {
				return false, nil
			}
			deleted = true
			return true, nil
		},
		FindAllFunc: func(ctx context.Context) ([]models.Appointment, error) {
			if deleted {
				return nil, nil
			}
			return []models.Appointment{{ID: id}}, nil
		},
	}
	svc := NewService(repo, &mockResolver{})

	require.NoError(t, svc.Delete(context.Background(), id))

	// The record is gone from subsequent listings.
	appointments, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appointments)

	// A second delete of the same id fails with NotFound.
	err = svc.Delete(context.Background(), id)
	assert.True(t, models.IsNotFound(err))
}
