package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/appointment"
	"github.com/medicore/hospital-api/internal/utils"
)

// BookAppointment handles POST /appointment/post. The authenticated patient
// owns the booking; the doctor is identified by department + name and
// resolved before anything is persisted.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req appointment.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userIDHex, exists := c.Get("userID")
	if !exists {
		utils.Fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	patientID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Invalid user ID in token")
		return
	}

	apt, err := h.Appointments.Book(c.Request.Context(), patientID, req)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "Appointment booked successfully", gin.H{"appointment": apt})
}

// GetAllAppointments handles GET /appointment/getall. The admin gate lives
// on the route; the read itself is unrestricted.
func (h *Handler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.Appointments.ListAll(c.Request.Context())
	if err != nil {
		utils.FailWithError(c, err)
		return
	}
	utils.Success(c, "", gin.H{"appointments": appointments})
}

// UpdateAppointment handles PUT /appointment/update/:id.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req appointment.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Appointments.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", gin.H{"appointment": updated})
}

// DeleteAppointment handles DELETE /appointment/delete/:id.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.Appointments.Delete(c.Request.Context(), id); err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}
