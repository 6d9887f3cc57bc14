package personnel

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	personnelDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/personnel"
	"github.com/kbelhadj/roster-management/internal/roster"
)

// ListAPI is the slice of the request capability the fetcher needs.
type ListAPI interface {
	GetList(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error)
}

// NewFetcher builds the store fetcher for the personnel roster. Query
// parameters are passed through opaquely for server-side filtering; the
// pipeline applies its own filters regardless. Elements that fail to decode
// are skipped, not fatal.
func NewFetcher(api ListAPI, query url.Values, logger *slog.Logger) roster.Fetcher[Record] {
	return func(ctx context.Context) ([]Record, error) {
		raws, err := api.GetList(ctx, "/personnel", query)
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(raws))
		for _, raw := range raws {
			var dm personnelDatamodel.Record
			if err := json.Unmarshal(raw, &dm); err != nil {
				logger.Warn("skipping undecodable personnel element", "error", err)
				continue
			}
			records = append(records, Normalize(&dm))
		}
		return records, nil
	}
}
