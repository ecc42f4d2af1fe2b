package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/media"
	"github.com/medicore/hospital-api/internal/user"
	"github.com/medicore/hospital-api/internal/utils"
)

// RegisterPatient handles POST /user/patient/register.
func (h *Handler) RegisterPatient(c *gin.Context) {
	var req user.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	created, token, err := h.Users.RegisterPatient(c.Request.Context(), req)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "Patient registered successfully", gin.H{
		"user":  created,
		"token": token,
	})
}

// Login handles POST /user/login.
func (h *Handler) Login(c *gin.Context) {
	var req user.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	found, token, err := h.Users.Login(c.Request.Context(), req)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "Login Successful", gin.H{
		"user":  found,
		"token": token,
	})
}

// AddAdmin handles POST /user/admin/addnew.
func (h *Handler) AddAdmin(c *gin.Context) {
	var req user.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	admin, err := h.Users.AddAdmin(c.Request.Context(), req)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "New Admin added successfully", gin.H{"admin": admin})
}

// AddDoctor handles POST /user/doctor/addnew. The request is multipart: the
// demographic fields arrive as form values and the avatar as the docAvatar
// file.
func (h *Handler) AddDoctor(c *gin.Context) {
	req := user.RegisterInput{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		AdharID:   c.PostForm("adharId"),
		DOB:       c.PostForm("dob"),
		Gender:    c.PostForm("gender"),
		Password:  c.PostForm("password"),
	}
	department := c.PostForm("doctorDepartment")

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.AdharID == "" || req.DOB == "" || req.Gender == "" || req.Password == "" ||
		department == "" {
		utils.Fail(c, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	fileHeader, err := c.FormFile("docAvatar")
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Please upload doctor's photo")
		return
	}
	if !media.AllowedFormats[fileHeader.Header.Get("Content-Type")] {
		utils.Fail(c, http.StatusBadRequest, "File format not supported. Please upload JPG, PNG, or WEBP.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("AddDoctor: failed to open uploaded avatar: %v", err)
		utils.Fail(c, http.StatusInternalServerError, "Failed to read uploaded photo")
		return
	}
	defer file.Close()

	doctor, err := h.Users.AddDoctor(c.Request.Context(), req, department, file)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}

	utils.Success(c, "New Doctor added successfully", gin.H{"doctor": doctor})
}

// ListDoctors handles GET /user/doctors.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Users.ListDoctors(c.Request.Context())
	if err != nil {
		utils.FailWithError(c, err)
		return
	}
	utils.Success(c, "", gin.H{"doctors": doctors})
}

// Me handles GET /user/admin/me and GET /user/patient/me.
func (h *Handler) Me(c *gin.Context) {
	userIDHex, exists := c.Get("userID")
	if !exists {
		utils.Fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	userID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	found, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.FailWithError(c, err)
		return
	}
	utils.Success(c, "", gin.H{"user": found})
}

// LogoutAdmin and LogoutPatient acknowledge logout. Bearer tokens are not
// revoked server-side; the client drops the token.
func (h *Handler) LogoutAdmin(c *gin.Context) {
	utils.Success(c, "Admin logged out successfully", nil)
}

func (h *Handler) LogoutPatient(c *gin.Context) {
	utils.Success(c, "Patient logged out successfully", nil)
}
