package handlers

import (
	"github.com/medicore/hospital-api/internal/appointment"
	"github.com/medicore/hospital-api/internal/user"
)

// Handler holds the services the HTTP layer dispatches to.
type Handler struct {
	Users        *user.Service
	Appointments *appointment.Service
}

func NewHandler(users *user.Service, appointments *appointment.Service) *Handler {
	return &Handler{
		Users:        users,
		Appointments: appointments,
	}
}
