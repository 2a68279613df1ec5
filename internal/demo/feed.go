package demo

import (
	"context"
	"fmt"
	"time"
)

// Item is one row of the demo feed.
type Item struct {
	Index int
	Title string
}

// Feed is a paged, slow data source standing in for a remote API.
type Feed struct {
	pageSize int
	latency  time.Duration
	maxRows  int
}

// NewFeed creates a feed from cfg.
func NewFeed(cfg Config) *Feed {
	return &Feed{
		pageSize: cfg.PageSize,
		latency:  time.Duration(cfg.LatencyMS) * time.Millisecond,
		maxRows:  cfg.MaxRows,
	}
}

// Fetch returns the page of items starting at offset after the configured
// latency. An empty page means the feed is exhausted.
func (f *Feed) Fetch(ctx context.Context, offset int) ([]Item, error) {
	if f.latency > 0 {
		timer := time.NewTimer(f.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	n := f.pageSize
	if f.maxRows > 0 {
		n = min(n, f.maxRows-offset)
	}
	if n <= 0 {
		return nil, nil
	}

	items := make([]Item, n)
	for i := range items {
		idx := offset + i
		items[i] = Item{Index: idx, Title: fmt.Sprintf("Story #%d", idx+1)}
	}
	return items, nil
}
