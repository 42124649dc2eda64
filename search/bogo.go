package search

import (
	"cmp"
	"time"

	"github.com/katalvlaran/lvlsort/internal/rng"
)

// checkEvery is how many probes run between context and deadline polls.
const checkEvery = 1024

// Bogo probes uniformly random indices in [0, len(seq)) until one holds
// value, the time budget elapses (ErrTimeout), or the context is cancelled
// (ctx.Err()). An empty sequence yields ErrNotFound without probing.
//
// Cancellation and the deadline are both polled every 1024 probes, so the
// budget may be overrun by at most one such batch.
//
// There is no correctness guarantee beyond termination by timeout: an absent
// value always costs the full budget.
func Bogo[T cmp.Ordered](seq []T, value T, opts ...BogoOption) (int, error) {
	if len(seq) == 0 {
		return -1, ErrNotFound
	}

	o := DefaultBogoOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := rng.FromSeed(o.Seed)
	deadline := time.Now().Add(o.Timeout)
	for probes := 0; ; probes++ {
		idx := r.Intn(len(seq))
		if seq[idx] == value {
			return idx, nil
		}
		if probes%checkEvery != 0 {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return -1, o.Ctx.Err()
		default:
		}
		if !time.Now().Before(deadline) {
			return -1, ErrTimeout
		}
	}
}
