package member

import "time"

const (
	PlanBasic    = "Basic"
	PlanStandard = "Standard"
	PlanPremium  = "Premium"
	PlanVIP      = "VIP"
)

var membershipTypes = map[string]bool{
	PlanBasic:    true,
	PlanStandard: true,
	PlanPremium:  true,
	PlanVIP:      true,
}

type Member struct {
	ID              int        `db:"id" json:"id"`
	AdminID         int        `db:"admin_id" json:"-"`
	GymName         string     `db:"gym_name" json:"gymName"`
	Name            string     `db:"name" json:"name"`
	Email           *string    `db:"email" json:"email,omitempty"`
	Phone           string     `db:"phone" json:"phone"`
	MembershipType  string     `db:"membership_type" json:"membershipType"`
	JoinDate        time.Time  `db:"join_date" json:"joinDate"`
	ExpiryDate      *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	LastPaymentDate *time.Time `db:"last_payment_date" json:"lastPaymentDate,omitempty"`
	LastPaymentID   *int       `db:"last_payment_id" json:"lastPaymentId,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
	Reminders       []Notice   `db:"-" json:"reminders,omitempty"`
}

// Notice is a lightweight payment notice shown on the member dashboard.
type Notice struct {
	ID       int       `db:"id" json:"id"`
	MemberID int       `db:"member_id" json:"-"`
	Message  string    `db:"message" json:"message"`
	Date     time.Time `db:"date" json:"date"`
	Seen     bool      `db:"seen" json:"seen"`
}

// NewMember is the validated input for Repository.Create. An empty Password
// means the phone number becomes the initial password.
type NewMember struct {
	Name           string
	Email          *string
	Phone          string
	MembershipType string
	ExpiryDate     *time.Time
	Password       string
}

// Patch holds the fields an admin edit touches; nil fields are left alone.
type Patch struct {
	Name           *string
	Email          *string
	Phone          *string
	MembershipType *string
	ExpiryDate     *time.Time
	Password       *string
}

type CreateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
	ExpiryDate     string `json:"expiryDate"`
	Password       string `json:"password"`
}

type UpdateRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	MembershipType *string `json:"membershipType"`
	ExpiryDate     *string `json:"expiryDate"`
	Password       *string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Summary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	GymName string `json:"gymName"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	Member  Summary `json:"member"`
}
