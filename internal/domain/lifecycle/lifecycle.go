// Package lifecycle holds shared constants for process start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources such as the HTTP server and the database pool.
const DefaultTimeout = 10 * time.Second
