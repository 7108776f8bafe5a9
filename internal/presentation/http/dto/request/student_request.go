package request

// CreateStudentRequest represents a student enrollment request
type CreateStudentRequest struct {
	UserID        *string `json:"user_id" binding:"omitempty,uuid"`
	FirstName     string  `json:"first_name" binding:"required,min=2,max=255"`
	LastName      string  `json:"last_name" binding:"required,min=2,max=255"`
	ClassName     string  `json:"class_name" binding:"required"`
	RollNumber    string  `json:"roll_number" binding:"required"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	Address       *string `json:"address"`
	AdmittedAt    *string `json:"admitted_at"` // YYYY-MM-DD
}

// UpdateStudentRequest represents a partial student update
type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ClassName     *string `json:"class_name"`
	RollNumber    *string `json:"roll_number"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	Address       *string `json:"address"`
}
