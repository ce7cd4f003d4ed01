package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RW482/vora/entities"
	repo "github.com/RW482/vora/pkg/order/repository"
	"github.com/RW482/vora/pkg/order/service"
)

// Notifier is satisfied by the sync orchestrator; every mutation schedules
// a debounced push of the whole snapshot.
type Notifier interface {
	NotifyMutation()
}

type orderSvc struct {
	r repo.OrderRepository
	n Notifier
}

func New(r repo.OrderRepository, n Notifier) service.OrderService {
	return &orderSvc{r: r, n: n}
}

func (s *orderSvc) Create(in service.CreateOrderInput) (*entities.Order, error) {
	if strings.TrimSpace(in.PartyName) == "" {
		return nil, errors.New("party name is required")
	}
	if in.Route != entities.RouteMumToKop && in.Route != entities.RouteKopToMum {
		return nil, errors.New("invalid route")
	}
	if in.BookingDate == "" {
		in.BookingDate = time.Now().Format("2006-01-02")
	}
	total := in.TotalAmount
	if total == 0 {
		total = in.Weight * in.Rate
	}
	o := &entities.Order{
		ID:                uuid.NewString(),
		PartyName:         in.PartyName,
		PlotNo:            in.PlotNo,
		MobileNo:          in.MobileNo,
		BrokerName:        in.BrokerName,
		Weight:            in.Weight,
		Remark:            in.Remark,
		VehicleAssignedNo: entities.NormalizeVehicleNo(in.VehicleAssignedNo),
		Rate:              in.Rate,
		TotalAmount:       total,
		PaymentStatus:     in.PaymentStatus,
		BranchID:          in.BranchID,
		Route:             in.Route,
		Status:            entities.OrderPending,
		BookingDate:       in.BookingDate,
	}
	if err := s.r.Create(o); err != nil {
		return nil, err
	}
	s.notify()
	return o, nil
}

// AdvanceStatus walks the fixed cycle Pending -> Loaded -> Delivered.
// Delivered is terminal: the order is returned untouched.
func (s *orderSvc) AdvanceStatus(id string) (*entities.Order, error) {
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	next, ok := nextStatus(o.Status)
	if !ok {
		return o, nil
	}
	o.Status = next
	if err := s.r.Update(o); err != nil {
		return nil, err
	}
	s.notify()
	return o, nil
}

func (s *orderSvc) MarkPaid(id string) (*entities.Order, error) {
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus == entities.PaymentPaid {
		return o, nil
	}
	o.PaymentStatus = entities.PaymentPaid
	if err := s.r.Update(o); err != nil {
		return nil, err
	}
	s.notify()
	return o, nil
}

func (s *orderSvc) Delete(id string) error {
	if _, err := s.r.FindByID(id); err != nil {
		return err
	}
	if err := s.r.Delete(id); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Visible applies the role-based view: drivers see only orders assigned to
// their linked vehicle; everyone else gets the staff filter.
func (s *orderSvc) Visible(viewer *entities.User, f service.Filter) ([]entities.Order, error) {
	all, err := s.r.List()
	if err != nil {
		return nil, err
	}
	if viewer != nil && viewer.Role == entities.RoleDriver {
		return filterDriver(all, viewer.LinkedVehicleNo), nil
	}
	return filterStaff(all, f), nil
}

func (s *orderSvc) notify() {
	if s.n != nil {
		s.n.NotifyMutation()
	}
}

func nextStatus(cur string) (string, bool) {
	switch cur {
	case entities.OrderPending:
		return entities.OrderLoaded, true
	case entities.OrderLoaded:
		return entities.OrderDelivered, true
	default:
		return "", false
	}
}

func filterDriver(orders []entities.Order, linkedVehicleNo string) []entities.Order {
	want := entities.NormalizeVehicleNo(linkedVehicleNo)
	out := make([]entities.Order, 0)
	if want == "" {
		return out
	}
	for _, o := range orders {
		if entities.NormalizeVehicleNo(o.VehicleAssignedNo) == want {
			out = append(out, o)
		}
	}
	return out
}

func filterStaff(orders []entities.Order, f service.Filter) []entities.Order {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entities.Order, 0)
	for _, o := range orders {
		if o.Route != f.Route || o.BookingDate != f.Date {
			continue
		}
		if f.BranchID != "" && f.BranchID != "all" && o.BranchID != f.BranchID {
			continue
		}
		if q != "" && !matchesSearch(o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o entities.Order, q string) bool {
	return strings.Contains(strings.ToLower(o.PartyName), q) ||
		strings.Contains(strings.ToLower(o.BrokerName), q) ||
		strings.Contains(strings.ToLower(o.VehicleAssignedNo), q)
}
