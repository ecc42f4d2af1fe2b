package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role determines which operations a caller may invoke.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

// Gender values accepted at registration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Avatar references an image stored on the hosting service.
type Avatar struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

// User is an identity record. Email is globally unique across all roles,
// enforced by a unique index on the users collection. DoctorDepartment is
// only meaningful when Role is Doctor.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName        string             `bson:"firstName" json:"firstName"`
	LastName         string             `bson:"lastName" json:"lastName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	AdharID          string             `bson:"adharId" json:"adharId"`
	DOB              time.Time          `bson:"dob" json:"dob"`
	Gender           string             `bson:"gender" json:"gender"`
	Password         string             `bson:"password" json:"-"` // Hide from JSON responses
	Role             Role               `bson:"role" json:"role"`
	DoctorDepartment string             `bson:"doctorDepartment,omitempty" json:"doctorDepartment,omitempty"`
	DocAvatar        *Avatar            `bson:"docAvatar,omitempty" json:"docAvatar,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
