package entities

// Snapshot is the whole-state blob exchanged verbatim with the sync bin.
// There is no delta representation: every push overwrites the remote
// document and every pull replaces the local collections in full.
type Snapshot struct {
	Users    []User   `json:"users"`
	Branches []Branch `json:"branches"`
	Trucks   []Truck  `json:"trucks"`
	Orders   []Order  `json:"orders"`
}
