// Package appointment implements the booking workflow: create with doctor
// resolution, list, partial update, and delete.
package appointment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/models"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/utils"
)

// DoctorResolver resolves a department + doctor name pair to one doctor id.
type DoctorResolver interface {
	ResolveDoctor(ctx context.Context, department, firstName, lastName string) (primitive.ObjectID, error)
}

// BookInput carries the patient-supplied booking fields. Dates arrive as
// strings and are parsed after the required-field check so a missing field is
// always reported as missing, not malformed.
type BookInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AdharID         string `json:"adharId"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	Address         string `json:"address"`
	HasVisited      bool   `json:"hasVisited"`
}

// UpdateInput is the partial field set for an update. Only non-nil fields are
// applied. Status may move between any of Pending, Accepted and Rejected;
// there is no transition guard.
type UpdateInput struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	AdharID         *string `json:"adharId"`
	DOB             *string `json:"dob"`
	Gender          *string `json:"gender"`
	AppointmentDate *string `json:"appointment_date"`
	Department      *string `json:"department"`
	Address         *string `json:"address"`
	HasVisited      *bool   `json:"hasVisited"`
	Status          *string `json:"status"`
}

// Service is the appointment workflow. Each operation is a single
// request-scoped unit of work; concurrency control is the storage layer's
// per-document atomicity.
type Service struct {
	appointments repository.AppointmentRepository
	resolver     DoctorResolver
}

func NewService(appointments repository.AppointmentRepository, resolver DoctorResolver) *Service {
	return &Service{appointments: appointments, resolver: resolver}
}

// Book validates the input, resolves the doctor and persists a new
// appointment with status Pending. The doctor name is embedded as a
// point-in-time snapshot, not a live reference.
func (s *Service) Book(ctx context.Context, patientID primitive.ObjectID, in BookInput) (*models.Appointment, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Phone == "" ||
		in.AppointmentDate == "" || in.AdharID == "" || in.DOB == "" || in.Gender == "" ||
		in.Address == "" || in.Department == "" || in.DoctorFirstName == "" || in.DoctorLastName == "" {
		return nil, models.NewValidationError("Please fill all the required fields")
	}

	dob, err := utils.ParseDate(in.DOB)
	if err != nil {
		return nil, models.NewValidationError("Invalid date of birth")
	}
	aptDate, err := utils.ParseDate(in.AppointmentDate)
	if err != nil {
		return nil, models.NewValidationError("Invalid appointment date")
	}

	doctorID, err := s.resolver.ResolveDoctor(ctx, in.Department, in.DoctorFirstName, in.DoctorLastName)
	if err != nil {
		return nil, err
	}

	apt := &models.Appointment{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		AdharID:         in.AdharID,
		DOB:             dob,
		Gender:          in.Gender,
		AppointmentDate: aptDate,
		Department:      in.Department,
		Doctor: models.DoctorName{
			FirstName: in.DoctorFirstName,
			LastName:  in.DoctorLastName,
		},
		HasVisited: in.HasVisited,
		Address:    in.Address,
		DoctorID:   doctorID,
		PatientID:  patientID,
		Status:     models.StatusPending,
	}

	created, err := s.appointments.Create(ctx, apt)
	if err != nil {
		return nil, models.NewInternalError("Failed to book appointment")
	}
	return created, nil
}

// ListAll returns every appointment, unfiltered, in storage order. Access
// control for this read lives on the route, not here.
func (s *Service) ListAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.appointments.FindAll(ctx)
	if err != nil {
		return nil, models.NewInternalError("Failed to retrieve appointments")
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	return appointments, nil
}

// Update applies the provided partial field set to an existing appointment
// and returns the updated record.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Appointment, error) {
	existing, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError("Failed to look up appointment")
	}
	if existing == nil {
		return nil, models.NewNotFoundError("No such appointment found")
	}

	fields, err := updateFields(in)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, models.NewValidationError("No fields to update")
	}

	updated, err := s.appointments.Update(ctx, id, fields)
	if err != nil {
		return nil, models.NewInternalError("Failed to update appointment")
	}
	if updated == nil {
		return nil, models.NewNotFoundError("No such appointment found")
	}
	return updated, nil
}

// Delete removes an appointment permanently. Deleting an unknown id fails
// with NotFound, so a second delete of the same id is a clean failure.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	removed, err := s.appointments.Delete(ctx, id)
	if err != nil {
		return models.NewInternalError("Failed to delete appointment")
	}
	if !removed {
		return models.NewNotFoundError("No such appointment found")
	}
	return nil
}

func updateFields(in UpdateInput) (map[string]any, error) {
	fields := map[string]any{}
	if in.FirstName != nil {
		fields["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["lastName"] = *in.LastName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.AdharID != nil {
		fields["adharId"] = *in.AdharID
	}
	if in.DOB != nil {
		t, err := utils.ParseDate(*in.DOB)
		if err != nil {
			return nil, models.NewValidationError("Invalid date of birth")
		}
		fields["dob"] = t
	}
	if in.Gender != nil {
		fields["gender"] = *in.Gender
	}
	if in.AppointmentDate != nil {
		t, err := utils.ParseDate(*in.AppointmentDate)
		if err != nil {
			return nil, models.NewValidationError("Invalid appointment date")
		}
		fields["appointment_date"] = t
	}
	if in.Department != nil {
		fields["department"] = *in.Department
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.HasVisited != nil {
		fields["hasVisited"] = *in.HasVisited
	}
	if in.Status != nil {
		status := models.AppointmentStatus(*in.Status)
		if !models.ValidStatus(status) {
			return nil, models.NewValidationError("Invalid appointment status")
		}
		fields["status"] = status
	}
	return fields, nil
}
