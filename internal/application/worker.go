package application

import "context"

// Worker represents a background runner of snapshot cycles.
// Implementations must run until the context is canceled.
type Worker interface {
	Start(ctx context.Context)
}
