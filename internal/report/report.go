// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paperlist/internal/pubmed"
	"github.com/pdiddy/paperlist/pkg/types"
)

// Fetcher is the PubMed client surface the pipeline needs. *pubmed.Client
// implements it; tests substitute a stub.
type Fetcher interface {
	SearchIDs(ctx context.Context, query string, cfg types.PubMedConfig) ([]string, error)
	Summary(ctx context.Context, id string, cfg types.PubMedConfig) (pubmed.SummaryResponse, error)
}

// Run executes the pipeline: one search, then one sequential summary fetch
// per returned ID, each normalized into a PaperRecord. Record order matches
// the ID order from the search. Any HTTP failure aborts the run; the caller
// writes no output in that case. Per-item status goes to w.
func Run(ctx context.Context, client Fetcher, query string, cfg types.PubMedConfig, w io.Writer) ([]types.PaperRecord, error) {
	ids, err := client.SearchIDs(ctx, query, cfg)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "query %q matched %d paper(s)\n", query, len(ids))

	records := make([]types.PaperRecord, 0, len(ids))
	for _, id := range ids {
		resp, err := client.Summary(ctx, id, cfg)
		if err != nil {
			return nil, err
		}
		records = append(records, RecordFromDoc(id, resp.Doc(id)))
		fmt.Fprintf(w, "fetched %s\n", id)
	}

	return records, nil
}

// Write serializes a finished run: the CSV always, plus the YAML run file
// when cfg names one.
func Write(cfg types.ReportConfig, query string, pubCfg types.PubMedConfig, records []types.PaperRecord) error {
	if err := WriteCSV(cfg.OutputPath, records); err != nil {
		return err
	}
	if cfg.RunFilePath != "" {
		if err := WriteRunFile(cfg.RunFilePath, query, pubCfg, cfg.OutputPath, records); err != nil {
			return err
		}
	}
	return nil
}
