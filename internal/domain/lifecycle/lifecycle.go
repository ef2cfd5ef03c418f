// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// resources (HTTP server, database pool, publishers).
const DefaultTimeout = 10 * time.Second
