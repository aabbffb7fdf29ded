package reminder

import "time"

type Reminder struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"memberId"`
	Message   string    `db:"message" json:"message"`
	DueDate   time.Time `db:"due_date" json:"dueDate"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Seen      bool      `db:"seen" json:"seen"`
}

type CreateRequest struct {
	MemberID int     `json:"memberId" binding:"required,gt=0"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	DueDate  string  `json:"dueDate" binding:"required"`
}
