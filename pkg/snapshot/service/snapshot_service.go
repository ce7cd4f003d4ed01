package service

import "github.com/RW482/vora/entities"

// SnapshotService assembles and replaces the whole-state blob. Load/Replace
// is also the local side of the sync exchange: the orchestrator pushes the
// loaded blob and applies pulled ones through Replace.
type SnapshotService interface {
	Load() (*entities.Snapshot, error)
	Replace(snap *entities.Snapshot) error
}
