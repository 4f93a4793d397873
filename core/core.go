package core

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/outwriter"
	"github.com/dealflowhq/dealflow/schema"
)

// BuildBoard runs the full pipeline (scan → cache → normalize → rank →
// aggregate) and returns the board handed to presenters. now is injected so
// TTL behavior is deterministic under test; production callers pass
// time.Now().
func BuildBoard(ctx context.Context, cfg *contract.Config, client contract.StoreClient, mgr contract.CacheManager, now time.Time) (*schema.BoardResult, error) {
	raws, hit, err := cachedScan(ctx, cfg, client, mgr, now)
	if err != nil {
		return nil, err
	}

	records := NormalizeAll(raws)
	records = filterMinScore(records, cfg.MinScore)
	ranked := rankRecords(records, cfg.ResultLimit)

	return &schema.BoardResult{
		Records:   ranked,
		Summary:   summarize(ranked),
		FetchedAt: now,
		CacheHit:  hit,
	}, nil
}

// ExecuteBoard runs the pipeline and writes the leaderboard in the
// configured output format. It serves as the main entry point for the
// 'board' command.
func ExecuteBoard(ctx context.Context, cfg *contract.Config, client contract.StoreClient, mgr contract.CacheManager) error {
	start := time.Now()
	board, err := BuildBoard(ctx, cfg, client, mgr, start)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteBoardResults(board, cfg, duration)
}

// ExecuteStats runs the pipeline and prints only the aggregate summary.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, client contract.StoreClient, mgr contract.CacheManager) error {
	board, err := BuildBoard(ctx, cfg, client, mgr, time.Now())
	if err != nil {
		return err
	}
	return outwriter.WriteSummary(board, cfg)
}
