package absence

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
	"github.com/kbelhadj/roster-management/internal/roster"
)

// ListAPI is the slice of the request capability the fetcher needs.
type ListAPI interface {
	GetList(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error)
}

// NewFetcher builds the store fetcher for the absence roster. The query is
// passed through opaquely; results may come from a filtered or unfiltered
// endpoint and the pipeline filters identically either way.
func NewFetcher(api ListAPI, query url.Values, logger *slog.Logger) roster.Fetcher[Record] {
	return func(ctx context.Context) ([]Record, error) {
		raws, err := api.GetList(ctx, "/absences", query)
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(raws))
		for _, raw := range raws {
			var dm absenceDatamodel.Record
			if err := json.Unmarshal(raw, &dm); err != nil {
				logger.Warn("skipping undecodable absence element", "error", err)
				continue
			}
			records = append(records, Normalize(&dm))
		}
		return records, nil
	}
}
