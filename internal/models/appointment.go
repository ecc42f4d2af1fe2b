package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatus is a free-form label on the booking. Any status is
// reachable from any other; there is no transition table.
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "Pending"
	StatusAccepted AppointmentStatus = "Accepted"
	StatusRejected AppointmentStatus = "Rejected"
)

// ValidStatus reports whether s is one of the known status labels.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// DoctorName is the doctor's name as it was at booking time. It is embedded
// data, not a reference: if the doctor is later renamed the snapshot keeps
// the old name.
type DoctorName struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Appointment links one patient to one resolved doctor.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	AdharID         string             `bson:"adharId" json:"adharId"`
	DOB             time.Time          `bson:"dob" json:"dob"`
	Gender          string             `bson:"gender" json:"gender"`
	AppointmentDate time.Time          `bson:"appointment_date" json:"appointment_date"`
	Department      string             `bson:"department" json:"department"`
	Doctor          DoctorName         `bson:"doctor" json:"doctor"`
	HasVisited      bool               `bson:"hasVisited" json:"hasVisited"`
	Address         string             `bson:"address" json:"address"`
	DoctorID        primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	PatientID       primitive.ObjectID `bson:"patientId" json:"patientId"`
	Status          AppointmentStatus  `bson:"status" json:"status"`
}
