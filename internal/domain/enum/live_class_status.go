package enum

// LiveClassStatus represents the lifecycle status of a scheduled live class
type LiveClassStatus string

const (
	LiveClassScheduled LiveClassStatus = "scheduled"
	LiveClassCompleted LiveClassStatus = "completed"
	LiveClassCancelled LiveClassStatus = "cancelled"
)

// IsValid checks if the live class status is one of the known values
func (s LiveClassStatus) IsValid() bool {
	switch s {
	case LiveClassScheduled, LiveClassCompleted, LiveClassCancelled:
		return true
	}
	return false
}
