package soroban

import "context"

// Source supplies raw CSV text. Acquisition (upload endpoints, object
// store downloads, pastes) is owned by the host application; soroban
// only parses what it is given. Implementations should return the full
// file content — parsing is a single in-memory pass.
type Source interface {
	FetchCSV(ctx context.Context) (string, error)
}
