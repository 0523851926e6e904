package engine

// WritePolicy is the persistence discipline of a mutation. Blog post
// create and update carry the least-reproducible content and pay the
// latency of a confirmed remote write; every other mutation stays
// optimistic.
type WritePolicy int

const (
	// Optimistic commits memory and local cache immediately and pushes
	// to the remote store in the background. A failed push is logged,
	// never rolled back.
	Optimistic WritePolicy = iota

	// ConfirmedWrite pushes to the remote store first and commits
	// locally only after the write succeeds and verifies. Failure is
	// returned to the caller with prior state untouched.
	ConfirmedWrite
)

func (p WritePolicy) String() string {
	switch p {
	case Optimistic:
		return "optimistic"
	case ConfirmedWrite:
		return "confirmed"
	default:
		return "unknown"
	}
}
