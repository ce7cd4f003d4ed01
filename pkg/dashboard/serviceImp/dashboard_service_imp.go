package serviceImp

import (
	"github.com/RW482/vora/entities"
	orderRepo "github.com/RW482/vora/pkg/order/repository"
	svc "github.com/RW482/vora/pkg/dashboard/service"
	truckRepo "github.com/RW482/vora/pkg/truck/repository"
)

type dashSvc struct {
	orders orderRepo.OrderRepository
	trucks truckRepo.TruckRepository
}

func New(orders orderRepo.OrderRepository, trucks truckRepo.TruckRepository) svc.DashboardService {
	return &dashSvc{orders: orders, trucks: trucks}
}

// Compute recalculates everything from the current collections on each
// call. The dataset is a two-branch operation's daily book; caching would
// buy nothing.
func (s *dashSvc) Compute() (*svc.Stats, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	trucks, err := s.trucks.List()
	if err != nil {
		return nil, err
	}
	return aggregate(orders, trucks), nil
}

func aggregate(orders []entities.Order, trucks []entities.Truck) *svc.Stats {
	st := &svc.Stats{ActiveTrucks: len(trucks)}

	byRoute := map[string]*svc.RouteSummary{
		entities.RouteMumToKop: {Route: entities.RouteMumToKop},
		entities.RouteKopToMum: {Route: entities.RouteKopToMum},
	}
	for _, o := range orders {
		if o.Status == entities.OrderPending {
			st.PendingOrders++
		}
		st.TotalWeight += o.Weight
		st.TotalRevenue += revenue(o)
		if o.PaymentStatus != entities.PaymentPaid {
			st.UnpaidDues += revenue(o)
		}
		if r, ok := byRoute[o.Route]; ok {
			r.Count++
			r.Weight += o.Weight
		}
	}
	st.Routes = []svc.RouteSummary{*byRoute[entities.RouteMumToKop], *byRoute[entities.RouteKopToMum]}

	for _, t := range trucks {
		st.TruckLoads = append(st.TruckLoads, svc.TruckLoad{
			TruckID:   t.ID,
			VehicleNo: t.VehicleNo,
			LiveLoad:  liveLoad(orders, t.VehicleNo),
			Capacity:  t.WeightCapacity,
		})
	}
	return st
}

func revenue(o entities.Order) float64 {
	if o.TotalAmount != 0 {
		return o.TotalAmount
	}
	return o.Weight * o.Rate
}

func liveLoad(orders []entities.Order, vehicleNo string) float64 {
	want := entities.NormalizeVehicleNo(vehicleNo)
	var sum float64
	for _, o := range orders {
		if o.Status == entities.OrderDelivered {
			continue
		}
		if entities.NormalizeVehicleNo(o.VehicleAssignedNo) == want {
			sum += o.Weight
		}
	}
	return sum
}
