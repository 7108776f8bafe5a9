package request

// MarkAttendanceRequest marks one student's attendance for a day
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Status    string `json:"status" binding:"required"`
}

// BulkMarkEntry is one student's status within a bulk marking request
type BulkMarkEntry struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required"`
}

// MarkClassAttendanceRequest marks a whole class in one call
type MarkClassAttendanceRequest struct {
	Date  string          `json:"date" binding:"required"` // YYYY-MM-DD
	Marks []BulkMarkEntry `json:"marks" binding:"required,min=1,dive"`
}
