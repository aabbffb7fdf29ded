package announcement

import "time"

type Announcement struct {
	ID      int       `db:"id" json:"id"`
	AdminID int       `db:"admin_id" json:"-"`
	GymName string    `db:"gym_name" json:"gymName"`
	Message string    `db:"message" json:"message"`
	Date    time.Time `db:"date" json:"date"`
}

type CreateRequest struct {
	Message string `json:"message" binding:"required"`
}
