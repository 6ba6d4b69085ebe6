// Package resource governs document loading: how many documents are fetched
// at once, how many bytes may be resident, and how fast they are read.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   512 << 20,
//	    MaxWorkers:         8,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
//	if err := rc.AcquireMemory(size); err != nil {
//	    return err // ErrMemoryLimitExceeded, fail fast
//	}
//
//	r := resource.NewRateLimitedReader(ctx, body, rc)
//
// Memory reservations never block. Worker slots and IO tokens wait for the
// context.
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
