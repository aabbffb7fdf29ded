package task

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Task struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"memberId"`
	Text      string    `db:"text" json:"text"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateRequest struct {
	Text   string `json:"text" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
}

// UpdateRequest leaves nil fields untouched.
type UpdateRequest struct {
	Text   *string `json:"text" binding:"omitempty,min=1"`
	Status *string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
}
