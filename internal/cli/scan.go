package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/reorient/internal/ble"
	"github.com/SeamusWaldron/reorient/internal/recorder"
)

const scanTimeout = 5 * time.Second

// scanForCube scans for smart cubes, retrying up to attempts times. A nil
// result slice with a nil error means nothing was found.
func scanForCube(ctx context.Context, out io.Writer, logger zerolog.Logger, attempts int) (*ble.Client, []ble.ScanResult, error) {
	fmt.Fprintln(out, "Scanning for smart cubes...")

	client, err := ble.NewClient(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		scanCtx, cancel := context.WithTimeout(ctx, scanTimeout)
		results, err := client.Scan(scanCtx, scanTimeout)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return client, nil, ctx.Err()
			}
			fmt.Fprintf(out, "Scan %d failed: %v\n", attempt, err)
			continue
		}

		if len(results) > 0 {
			fmt.Fprintf(out, "Found: %s\n", results[0].Name)
			return client, results, nil
		}

		if attempt < attempts {
			fmt.Fprintf(out, "Scan %d: No devices found, retrying...\n", attempt)
		}
	}

	return client, nil, nil
}

// pickTarget prefers the last used device when it shows up in results.
func pickTarget(results []ble.ScanResult, state recorder.DeviceState) ble.ScanResult {
	if state.LastDeviceID != "" {
		for _, r := range results {
			if r.UUID == state.LastDeviceID {
				return r
			}
		}
	}
	return results[0]
}
