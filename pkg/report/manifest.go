package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/RW482/vora/entities"
)

// BuildManifestXLSX renders one route's bookings for a day as a spreadsheet
// for the loading bay printout.
func BuildManifestXLSX(route, date string, orders []entities.Order) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Vora Transport — Manifest %s", date))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Route: %s", routeLabel(route)))

	headers := []string{"Party", "Plot", "Mobile", "Broker", "Weight (T)", "Rate", "Amount", "Vehicle", "Status", "Payment"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, hd)
	}

	var totalWeight, totalAmount float64
	row := 5
	for _, o := range orders {
		if o.Route != route || o.BookingDate != date {
			continue
		}
		amount := o.TotalAmount
		if amount == 0 {
			amount = o.Weight * o.Rate
		}
		values := []interface{}{
			o.PartyName, o.PlotNo, o.MobileNo, o.BrokerName,
			o.Weight, o.Rate, amount, o.VehicleAssignedNo, o.Status, o.PaymentStatus,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		totalWeight += o.Weight
		totalAmount += amount
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row+1)
	f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(5, row+1)
	f.SetCellValue(sheet, cell, totalWeight)
	cell, _ = excelize.CoordinatesToCellName(7, row+1)
	f.SetCellValue(sheet, cell, totalAmount)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func routeLabel(route string) string {
	switch route {
	case entities.RouteMumToKop:
		return "Mumbai to Kolhapur"
	case entities.RouteKopToMum:
		return "Kolhapur to Mumbai"
	default:
		return route
	}
}
