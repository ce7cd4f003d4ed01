package entities

import "time"

const (
	RouteMumToKop = "MUM_TO_KOP"
	RouteKopToMum = "KOP_TO_MUM"
)

const (
	OrderPending   = "Pending"
	OrderLoaded    = "Loaded"
	OrderDelivered = "Delivered"
)

const PaymentPaid = "Paid"

type Order struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	PartyName         string    `json:"party_name"`
	PlotNo            string    `json:"plot_no"`
	MobileNo          string    `json:"mobile_no"`
	BrokerName        string    `json:"broker_name"`
	Weight            float64   `json:"weight"`
	Remark            string    `json:"remark"`
	VehicleAssignedNo string    `gorm:"index" json:"vehicle_assigned_no"`
	Rate              float64   `json:"rate"`
	TotalAmount       float64   `json:"total_amount"`
	PaymentStatus     string    `json:"payment_status"` // Paid|Unpaid
	BranchID          string    `gorm:"index" json:"branch_id"`
	Route             string    `gorm:"index" json:"route"` // MUM_TO_KOP|KOP_TO_MUM
	Status            string    `gorm:"index" json:"status"` // Pending|Loaded|Delivered
	BookingDate       string    `gorm:"index" json:"booking_date"` // YYYY-MM-DD
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
