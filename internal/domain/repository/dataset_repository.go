package repository

import (
	"context"

	"github.com/diillson/shipping-report/internal/domain/table"
	"github.com/diillson/shipping-report/internal/shared/types"
)

// DatasetRepository loads a tabular input, local or remote, into a table.
type DatasetRepository interface {
	Load(ctx context.Context, location string, opts types.LoadOptions) (*table.Table, error)
}
