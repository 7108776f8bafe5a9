package request

// RecordFeeRequest represents a new fee ledger entry submission
type RecordFeeRequest struct {
	StudentID    string   `json:"student_id" binding:"required,uuid"`
	ReceiptNo    string   `json:"receipt_no"`
	Month        string   `json:"month" binding:"required"`
	MonthlyFee   float64  `json:"monthly_fee" binding:"required,gt=0"`
	OtherCharges *float64 `json:"other_charges"`
	PaidAmount   float64  `json:"paid_amount" binding:"gte=0"`
}

// RecordPaymentRequest represents a payment against an existing fee entry
type RecordPaymentRequest struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	ReceiptNo string  `json:"receipt_no" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// ResolveReceiptRequest identifies the receipt to resolve
type ResolveReceiptRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	ReceiptNo string `json:"receipt_no" binding:"required"`
}
