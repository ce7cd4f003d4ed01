package entities

import "strings"

// NormalizeVehicleNo canonicalizes a vehicle number (uppercase + trim).
// Applied wherever a vehicle number enters the system: truck registration,
// driver linking, order assignment, snapshot import. Stored values are
// always normalized, so lookups compare with plain equality.
func NormalizeVehicleNo(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
