package driver

import (
	"context"

	"github.com/agenthands/chronicle/internal/core/model"
)

// GraphDriver runs a query against a knowledge graph and returns one record
// per result row.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string) ([]model.OfficeHolderRecord, error)
}
