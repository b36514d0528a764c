package airtable

import (
	"context"
	"errors"
	"log"
)

// maxPages stops a misbehaving server that keeps returning the same cursor.
const maxPages = 10000

var errCursorLoop = errors.New("airtable: pagination cursor did not advance")

// PageFunc fetches the page that starts at offset ("" for the first page).
type PageFunc func(ctx context.Context, offset string) (*Page, error)

// CollectPages follows the offset cursor until the server omits it and
// returns every record seen. Pages are fetched sequentially since each
// cursor comes from the previous response. A positive maxRecords stops the
// scan once that many records have been collected.
func CollectPages(ctx context.Context, next PageFunc, maxRecords int) ([]Record, error) {
	records := make([]Record, 0)
	offset := ""
	for pages := 0; pages < maxPages; pages++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := next(ctx, offset)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		records = append(records, page.Records...)

		if maxRecords > 0 && len(records) >= maxRecords {
			if page.Offset != "" {
				log.Printf("[AIRTABLE] scan stopped at %d records (limit reached)", maxRecords)
			}
			return records[:maxRecords], nil
		}
		if page.Offset == "" {
			return records, nil
		}
		if page.Offset == offset {
			return nil, errCursorLoop
		}
		offset = page.Offset
	}
	return records, nil
}
