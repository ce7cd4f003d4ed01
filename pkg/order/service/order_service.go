package service

import "github.com/RW482/vora/entities"

type CreateOrderInput struct {
	PartyName         string  `json:"party_name"`
	PlotNo            string  `json:"plot_no"`
	MobileNo          string  `json:"mobile_no"`
	BrokerName        string  `json:"broker_name"`
	Weight            float64 `json:"weight"`
	Remark            string  `json:"remark"`
	VehicleAssignedNo string  `json:"vehicle_assigned_no"`
	Rate              float64 `json:"rate"`
	TotalAmount       float64 `json:"total_amount"`
	PaymentStatus     string  `json:"payment_status"`
	BranchID          string  `json:"branch_id"`
	Route             string  `json:"route"`
	BookingDate       string  `json:"booking_date"`
}

// Filter is the staff-side view selection: route + booking date are
// mandatory, branch narrows unless "all", search matches party, broker or
// assigned vehicle (case-insensitive substring).
type Filter struct {
	Route    string
	Date     string
	BranchID string
	Search   string
}

type OrderService interface {
	Create(in CreateOrderInput) (*entities.Order, error)
	AdvanceStatus(id string) (*entities.Order, error)
	MarkPaid(id string) (*entities.Order, error)
	Delete(id string) error
	Visible(viewer *entities.User, f Filter) ([]entities.Order, error)
}
