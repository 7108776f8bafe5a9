package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// StudentHandler handles student management HTTP requests
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create handles enrolling a new student
// @Summary Create Student
// @Description Enroll a new student
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateStudentRequest true "Student data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req request.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateStudentInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ClassName:     req.ClassName,
		RollNumber:    req.RollNumber,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Address:       req.Address,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		input.UserID = &userID
	}
	if req.AdmittedAt != nil {
		admittedAt, err := time.Parse("2006-01-02", *req.AdmittedAt)
		if err != nil {
			response.BadRequest(c, "Invalid admission date, expected YYYY-MM-DD")
			return
		}
		input.AdmittedAt = &admittedAt
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Student enrolled successfully", gin.H{
		"student": student,
	})
}

// List handles listing students with pagination
// @Summary List Students
// @Description Get a paginated list of students
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param class_name query string false "Filter by class"
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.studentService.ListStudents(c.Request.Context(), params, c.Query("class_name"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Students retrieved successfully", result)
}

// Get handles getting a single student
// @Summary Get Student
// @Description Get a student by ID
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student retrieved successfully", gin.H{
		"student": student,
	})
}

// GetMine handles fetching the student record linked to the current user
// @Summary Get My Student Record
// @Description Get the student record linked to the authenticated user
// @Tags students
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /students/me [get]
func (h *StudentHandler) GetMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	student, err := h.studentService.GetStudentByUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student retrieved successfully", gin.H{
		"student": student,
	})
}

// Update handles updating a student record
// @Summary Update Student
// @Description Update a student's details
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body request.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	var req request.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), &service.UpdateStudentInput{
		ID:            studentID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ClassName:     req.ClassName,
		RollNumber:    req.RollNumber,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Address:       req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student updated successfully", gin.H{
		"student": student,
	})
}

// Delete handles removing a student
// @Summary Delete Student
// @Description Remove a student record
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), studentID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student deleted successfully", nil)
}
