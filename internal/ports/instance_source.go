package ports

import "context"

// Remote location of benchmark files.
type InstanceSource interface {
	// Return the file content at location.
	Fetch(ctx context.Context, location string) (string, error)
}
