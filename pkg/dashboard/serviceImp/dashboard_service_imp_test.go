package serviceImp

import (
	"testing"

	"github.com/RW482/vora/entities"
)

func TestAggregate(t *testing.T) {
	orders := []entities.Order{
		{ID: "o1", Route: entities.RouteMumToKop, Weight: 2, TotalAmount: 1000, Status: entities.OrderPending, PaymentStatus: entities.PaymentPaid, VehicleAssignedNo: "MH-09-AZ-1234"},
		{ID: "o2", Route: entities.RouteMumToKop, Weight: 3, Rate: 400, Status: entities.OrderLoaded, VehicleAssignedNo: "mh-09-az-1234"},
		{ID: "o3", Route: entities.RouteKopToMum, Weight: 5, TotalAmount: 2500, Status: entities.OrderDelivered, PaymentStatus: entities.PaymentPaid, VehicleAssignedNo: "MH-09-AZ-1234"},
	}
	trucks := []entities.Truck{
		{ID: "t1", VehicleNo: "MH-09-AZ-1234", WeightCapacity: 12},
		{ID: "t2", VehicleNo: "MH-12-QQ-0001", WeightCapacity: 9},
	}

	st := aggregate(orders, trucks)

	if st.ActiveTrucks != 2 {
		t.Errorf("active trucks = %d, want 2", st.ActiveTrucks)
	}
	if st.PendingOrders != 1 {
		t.Errorf("pending = %d, want 1", st.PendingOrders)
	}
	if st.TotalWeight != 10 {
		t.Errorf("total weight = %v, want 10", st.TotalWeight)
	}
	// o2 has no stored total, so revenue falls back to weight*rate = 1200.
	if st.TotalRevenue != 4700 {
		t.Errorf("revenue = %v, want 4700", st.TotalRevenue)
	}
	if st.UnpaidDues != 1200 {
		t.Errorf("unpaid = %v, want 1200", st.UnpaidDues)
	}

	// Route summaries partition the order weight.
	if len(st.Routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(st.Routes))
	}
	var sum float64
	for _, r := range st.Routes {
		sum += r.Weight
	}
	if sum != st.TotalWeight {
		t.Errorf("route weights sum to %v, want %v", sum, st.TotalWeight)
	}
	if st.Routes[0].Route != entities.RouteMumToKop || st.Routes[0].Count != 2 {
		t.Errorf("MUM_TO_KOP summary = %+v", st.Routes[0])
	}
	if st.Routes[1].Route != entities.RouteKopToMum || st.Routes[1].Count != 1 {
		t.Errorf("KOP_TO_MUM summary = %+v", st.Routes[1])
	}

	// Live loads skip delivered orders and match vehicles case-insensitively.
	if len(st.TruckLoads) != 2 {
		t.Fatalf("truck loads = %d, want 2", len(st.TruckLoads))
	}
	if st.TruckLoads[0].LiveLoad != 5 {
		t.Errorf("t1 live load = %v, want 5", st.TruckLoads[0].LiveLoad)
	}
	if st.TruckLoads[1].LiveLoad != 0 {
		t.Errorf("t2 live load = %v, want 0", st.TruckLoads[1].LiveLoad)
	}
}

func TestAggregateEmpty(t *testing.T) {
	st := aggregate(nil, nil)
	if st.ActiveTrucks != 0 || st.PendingOrders != 0 || st.TotalWeight != 0 {
		t.Errorf("empty aggregate = %+v", st)
	}
	if len(st.Routes) != 2 {
		t.Errorf("routes = %d, want both corridors present even when empty", len(st.Routes))
	}
}
