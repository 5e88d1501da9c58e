// Package lifecycle holds shared start/stop limits for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery or client.
const DefaultTimeout = 10 * time.Second
