package sync

import (
	"context"
	"errors"

	"github.com/RW482/vora/entities"
)

var (
	ErrRemoteCreate = errors.New("sync: remote bin create failed")
	ErrRemoteWrite  = errors.New("sync: remote bin write failed")
	ErrRemoteFormat = errors.New("sync: remote document has unexpected shape")
)

// Client talks to the hosted JSON bin holding the shared snapshot. The bin
// is a single mutable document named by an opaque token; every device with
// the token reads and overwrites the same document (last write wins).
type Client interface {
	Create(ctx context.Context, snap *entities.Snapshot) (string, error)
	Push(ctx context.Context, token string, snap *entities.Snapshot) error
	Pull(ctx context.Context, token string) (*entities.Snapshot, error)
}
