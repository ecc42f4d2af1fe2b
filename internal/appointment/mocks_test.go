package appointment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/models"
	"github.com/medicore/hospital-api/internal/repository"
)

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)
var _ DoctorResolver = (*mockResolver)(nil)

type mockAppointmentRepo struct {
	CreateFunc   func(ctx context.Context, apt *models.Appointment) (*models.Appointment, error)
	FindAllFunc  func(ctx context.Context) ([]models.Appointment, error)
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Appointment, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) (bool, error)

	CreateCalls int
	UpdateCalls int
}

func (m *mockAppointmentRepo) Create(ctx context.Context, apt *models.Appointment) (*models.Appointment, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, apt)
	}
	apt.ID = primitive.NewObjectID()
	return apt, nil
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context) ([]models.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Appointment, error) {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type mockResolver struct {
	ResolveFunc  func(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error)
	ResolveCalls int
}

func (m *mockResolver) ResolveDoctor(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error) {
	m.ResolveCalls++
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, department, firstName, lastName)
	}
	return primitive.NewObjectID(), nil
}
