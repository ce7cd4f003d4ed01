package service

type RouteSummary struct {
	Route  string  `json:"route"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

type TruckLoad struct {
	TruckID   string  `json:"truck_id"`
	VehicleNo string  `json:"vehicle_no"`
	LiveLoad  float64 `json:"live_load"`
	Capacity  float64 `json:"capacity"`
}

type Stats struct {
	ActiveTrucks  int            `json:"active_trucks"`
	PendingOrders int            `json:"pending_orders"`
	TotalWeight   float64        `json:"total_weight"`
	TotalRevenue  float64        `json:"total_revenue"`
	UnpaidDues    float64        `json:"unpaid_dues"`
	Routes        []RouteSummary `json:"routes"`
	TruckLoads    []TruckLoad    `json:"truck_loads"`
}

type DashboardService interface {
	Compute() (*Stats, error)
}
