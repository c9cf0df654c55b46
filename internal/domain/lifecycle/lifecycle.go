// Package lifecycle holds shared timing values for process start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and consumers.
const DefaultTimeout = 10 * time.Second
