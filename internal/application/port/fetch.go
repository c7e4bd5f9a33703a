package port

import (
	"context"

	"github.com/bnema/deskutil/internal/domain/entity"
)

//go:generate mockgen -source=fetch.go -destination=mocks/mock_fetch.go -package=mocks

// FileFetcher downloads a single remote file to disk.
type FileFetcher interface {
	// Fetch performs one download attempt, overwriting the destination on success.
	// Non-success HTTP statuses are returned as errors and leave the destination untouched.
	Fetch(ctx context.Context, task entity.DownloadTask) (*entity.FetchResult, error)
}
