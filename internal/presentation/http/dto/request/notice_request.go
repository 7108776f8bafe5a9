package request

// CreateNoticeRequest represents a new notice. A nil class name makes the
// notice school-wide.
type CreateNoticeRequest struct {
	Title     string  `json:"title" binding:"required,max=255"`
	Body      string  `json:"body" binding:"required"`
	ClassName *string `json:"class_name"`
}

// UpdateNoticeRequest represents a partial notice update
type UpdateNoticeRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	ClassName *string `json:"class_name"`
}

// CreateResourceRequest represents a new study resource link
type CreateResourceRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Subject     string  `json:"subject" binding:"required,max=100"`
	ClassName   string  `json:"class_name" binding:"required"`
	URL         string  `json:"url" binding:"required,url"`
	Description *string `json:"description"`
}

// UpdateResourceRequest represents a partial study resource update
type UpdateResourceRequest struct {
	Title       *string `json:"title"`
	Subject     *string `json:"subject"`
	ClassName   *string `json:"class_name"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Description *string `json:"description"`
}
