package admin

import "time"

type Admin struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	GymName      string    `db:"gym_name" json:"gymName"`
	GymAddress   string    `db:"gym_address" json:"gymAddress"`
	Phone        string    `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewAdmin carries a plaintext password; the repository hashes it.
type NewAdmin struct {
	Email      string
	Password   string
	GymName    string
	GymAddress string
	Phone      string
}

type Dashboard struct {
	GymName       string  `db:"-" json:"gymName"`
	Members       int     `db:"members" json:"members"`
	Payments      int     `db:"payments" json:"payments"`
	PaymentsTotal float64 `db:"payments_total" json:"paymentsTotal"`
	Announcements int     `db:"announcements" json:"announcements"`
}

type RegisterRequest struct {
	GymName    string `json:"gymName" binding:"required"`
	GymAddress string `json:"gymAddress"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Summary struct {
	Email   string `json:"email"`
	GymName string `json:"gymName"`
}

type AuthResponse struct {
	Message string  `json:"message"`
	Admin   Summary `json:"admin"`
}

type CheckAuthResponse struct {
	Message string `json:"message"`
	AdminID int    `json:"adminId"`
	GymName string `json:"gymName"`
}
