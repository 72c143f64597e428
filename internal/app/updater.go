package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rvail/orrery/internal/body"
	"github.com/rvail/orrery/internal/horizons"
	"github.com/rvail/orrery/internal/state"
)

const (
	defaultRefreshInterval = 5 * time.Second
	defaultBodyDelay       = 120 * time.Millisecond

	// Horizons wants a window, not an instant; one minute at one-minute
	// steps yields exactly the row we need.
	fetchWindow = time.Minute
)

// StartUpdater launches the background goroutine that refreshes every
// planet's position at a fixed cadence. It returns immediately.
//
// There is no backoff beyond the cycle interval: the next scheduled cycle
// is the retry.
func StartUpdater(ctx context.Context, store *state.Store, fetcher horizons.VectorFetcher, interval, bodyDelay time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if bodyDelay <= 0 {
		bodyDelay = defaultBodyDelay
	}
	go func() {
		for {
			refreshCycle(ctx, store, fetcher, bodyDelay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}()
}

// refreshCycle fetches each planet sequentially, pausing between requests
// as courtesy to the remote service. Per-body failures update only the
// status string; the store keeps that body's last known position.
func refreshCycle(ctx context.Context, store *state.Store, fetcher horizons.VectorFetcher, bodyDelay time.Duration) {
	start := time.Now().UTC()
	stop := start.Add(fetchWindow)

	positions := make(map[body.Body]horizons.Vector3)
	status := "OK"

	for _, b := range body.Planets() {
		v, err := fetcher.FetchVector(ctx, b.Meta().HorizonsID, start, stop)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			status = fmt.Sprintf("Fetch error (%s): %v", b, err)
			log.Printf("ephemeris fetch failed for %s: %v", b, err)
		} else {
			positions[b] = v
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(bodyDelay):
		}
	}

	store.ApplyUpdate(positions, status, time.Now().UTC())
}
