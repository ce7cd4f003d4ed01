package serviceImp

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/RW482/vora/entities"
	orderRepo "github.com/RW482/vora/pkg/order/repository"
	repo "github.com/RW482/vora/pkg/truck/repository"
	"github.com/RW482/vora/pkg/truck/service"
)

type Notifier interface {
	NotifyMutation()
}

type truckSvc struct {
	r      repo.TruckRepository
	orders orderRepo.OrderRepository
	n      Notifier
}

func New(r repo.TruckRepository, orders orderRepo.OrderRepository, n Notifier) service.TruckService {
	return &truckSvc{r: r, orders: orders, n: n}
}

func (s *truckSvc) Register(in service.RegisterTruckInput) (*entities.Truck, error) {
	vehicleNo := entities.NormalizeVehicleNo(in.VehicleNo)
	if vehicleNo == "" {
		return nil, errors.New("vehicle number is required")
	}
	if strings.TrimSpace(in.DriverName) == "" {
		return nil, errors.New("driver name is required")
	}
	if in.CurrentRoute != entities.RouteMumToKop && in.CurrentRoute != entities.RouteKopToMum {
		return nil, errors.New("invalid route")
	}
	t := &entities.Truck{
		ID:              uuid.NewString(),
		DriverName:      in.DriverName,
		DriverMobile:    in.DriverMobile,
		FromStation:     in.FromStation,
		ToStation:       in.ToStation,
		WeightCapacity:  in.WeightCapacity,
		AvailableWeight: in.WeightCapacity,
		Status:          entities.TruckAvailable,
		CurrentRoute:    in.CurrentRoute,
		VehicleNo:       vehicleNo,
	}
	if err := s.r.Create(t); err != nil {
		return nil, err
	}
	s.notify()
	return t, nil
}

func (s *truckSvc) ListByRoute(route string) ([]service.TruckWithLoad, error) {
	trucks, err := s.r.ListByRoute(route)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]service.TruckWithLoad, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, service.TruckWithLoad{Truck: t, LiveLoad: liveLoad(orders, t.VehicleNo)})
	}
	return out, nil
}

func (s *truckSvc) UpdateStatus(id, status string) (*entities.Truck, error) {
	switch status {
	case entities.TruckAvailable, entities.TruckOnRoute, entities.TruckCompleted:
	default:
		return nil, errors.New("invalid status")
	}
	t, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	t.Status = status
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	s.notify()
	return t, nil
}

// Manifest returns every order assigned to the truck's vehicle, delivered
// ones included.
func (s *truckSvc) Manifest(id string) ([]entities.Order, error) {
	t, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	want := entities.NormalizeVehicleNo(t.VehicleNo)
	out := make([]entities.Order, 0)
	for _, o := range orders {
		if entities.NormalizeVehicleNo(o.VehicleAssignedNo) == want {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *truckSvc) notify() {
	if s.n != nil {
		s.n.NotifyMutation()
	}
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
