package payment

import "time"

// plans mirrors the membership enum; a payment records the plan paid for.
var plans = map[string]bool{
	"Basic":    true,
	"Standard": true,
	"Premium":  true,
	"VIP":      true,
}

// Payment is written once and never updated.
type Payment struct {
	ID            int       `db:"id" json:"id"`
	MemberID      *int      `db:"member_id" json:"memberId"`
	AdminID       int       `db:"admin_id" json:"-"`
	GymName       string    `db:"gym_name" json:"gymName"`
	MemberName    string    `db:"member_name" json:"memberName"`
	Plan          string    `db:"plan" json:"plan"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentDate   time.Time `db:"payment_date" json:"paymentDate"`
	ReceiptNumber string    `db:"receipt_number" json:"receiptNumber"`
}

type NewPayment struct {
	MemberID      int
	Amount        float64
	Plan          string
	ReceiptNumber string
}

type CreateRequest struct {
	MemberID int     `json:"memberId" binding:"required,gt=0"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Plan     string  `json:"plan" binding:"required,oneof=Basic Standard Premium VIP"`
}

type CreateResponse struct {
	Message       string `json:"message"`
	PaymentID     int    `json:"paymentId"`
	ReceiptNumber string `json:"receiptNumber"`
}
