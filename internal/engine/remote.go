package engine

import (
	"context"

	"github.com/moscowmix/sitesync/internal/domain"
)

// RemoteStore is the whole-document remote side of the sync engine: one
// JSON document under one fixed key, whole-document replace only.
//
// Get returns found=false when no document exists yet (the bootstrap
// case). Put acknowledges the write call only; acknowledgement does not
// guarantee a subsequent Get observes the write, which is why the engine
// verifies saves by re-reading.
type RemoteStore interface {
	Get(ctx context.Context) (snap domain.Snapshot, found bool, err error)
	Put(ctx context.Context, snap domain.Snapshot) error
}
