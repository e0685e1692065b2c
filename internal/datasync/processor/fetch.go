package processor

import (
	"adsync/internal/clients/amazonads"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// fetchEntities reads the whole entity graph, parents first. A failed sub-fetch is logged
// and counted; only a failure that leaves no campaigns at all, a token failure or a
// cancelled context abort the pass.
func (p *SyncProcessor) fetchEntities(ctx context.Context, remote Remote) (store.SyncSnapshot, int, error) {
	snap := store.SyncSnapshot{ProfileID: remote.ProfileID()}
	var warnings int

	campaigns, err := remote.FetchAllCampaigns(ctx)
	if err != nil {
		if fatalFetchError(ctx, err) || len(campaigns) == 0 {
			return snap, 0, fmt.Errorf("failed to fetch campaigns: %w", err)
		}
		warnings++
	}
	p.logger.Info(ctx, "fetched campaigns", observability.Field{Key: "count", Value: len(campaigns)})

	for _, c := range campaigns {
		snap.Campaigns = append(snap.Campaigns, toStoreCampaign(snap.ProfileID, c))
	}

	f := &fetcher{remote: remote, logger: p.logger, limit: p.config.FetchConcurrency}

	adGroups, campaignNegatives, err := f.perCampaign(ctx, campaigns)
	if err != nil {
		return snap, 0, err
	}
	for _, ag := range adGroups {
		snap.AdGroups = append(snap.AdGroups, toStoreAdGroup(ag))
	}

	keywords, adGroupNegatives, targets, err := f.perAdGroup(ctx, adGroups)
	if err != nil {
		return snap, 0, err
	}
	for _, k := range keywords {
		snap.Keywords = append(snap.Keywords, toStoreKeyword(k))
	}
	for _, n := range append(campaignNegatives, adGroupNegatives...) {
		snap.NegativeKeywords = append(snap.NegativeKeywords, toStoreNegativeKeyword(n))
	}
	for _, t := range targets {
		snap.ProductTargets = append(snap.ProductTargets, toStoreProductTarget(t))
	}

	warnings += f.warnings
	p.logger.Info(ctx, "fetch phase finished",
		observability.Field{Key: "ad_groups", Value: len(snap.AdGroups)},
		observability.Field{Key: "keywords", Value: len(snap.Keywords)},
		observability.Field{Key: "negative_keywords", Value: len(snap.NegativeKeywords)},
		observability.Field{Key: "product_targets", Value: len(snap.ProductTargets)},
		observability.Field{Key: "warnings", Value: warnings},
	)
	return snap, warnings, nil
}

func fatalFetchError(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, amazonads.ErrTokenRefresh)
}

// fetcher fans sub-fetches out over a bounded number of goroutines. Results are kept in
// input order so two passes over the same remote state produce the same snapshot.
type fetcher struct {
	remote Remote
	logger *observability.Logger
	limit  int

	mu       sync.Mutex
	warnings int
}

// soft logs a failed sub-fetch and swallows it unless it must abort the pass
func (f *fetcher) soft(ctx context.Context, what, parentID string, t amazonads.CampaignType, err error) error {
	if err == nil {
		return nil
	}
	if fatalFetchError(ctx, err) {
		return fmt.Errorf("failed to fetch %s for %s: %w", what, parentID, err)
	}
	f.logger.Warn(ctx, "sub-fetch failed, continuing with fewer rows",
		observability.Field{Key: "what", Value: what},
		observability.Field{Key: "parent_id", Value: parentID},
		observability.Field{Key: "campaign_type", Value: string(t)},
		observability.Field{Key: "error", Value: err.Error()},
	)
	f.mu.Lock()
	f.warnings++
	f.mu.Unlock()
	return nil
}

func (f *fetcher) perCampaign(ctx context.Context, campaigns []amazonads.Campaign) ([]amazonads.AdGroup, []amazonads.NegativeKeyword, error) {
	adGroups := make([][]amazonads.AdGroup, len(campaigns))
	negatives := make([][]amazonads.NegativeKeyword, len(campaigns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)
	for i, c := range campaigns {
		i, c := i, c
		g.Go(func() error {
			got, err := f.remote.FetchAdGroups(gctx, c.Type, c.ID)
			if err := f.soft(gctx, "ad groups", c.ID, c.Type, err); err != nil {
				return err
			}
			adGroups[i] = got

			if !amazonads.Supports(c.Type, amazonads.KindCampaignNegativeKeyword) {
				return nil
			}
			negs, err := f.remote.FetchCampaignNegativeKeywords(gctx, c.Type, c.ID)
			if err := f.soft(gctx, "campaign negative keywords", c.ID, c.Type, err); err != nil {
				return err
			}
			negatives[i] = negs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return flatten(adGroups), flatten(negatives), nil
}

func (f *fetcher) perAdGroup(ctx context.Context, adGroups []amazonads.AdGroup) ([]amazonads.Keyword, []amazonads.NegativeKeyword, []amazonads.Target, error) {
	keywords := make([][]amazonads.Keyword, len(adGroups))
	negatives := make([][]amazonads.NegativeKeyword, len(adGroups))
	targets := make([][]amazonads.Target, len(adGroups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)
	for i, ag := range adGroups {
		i, ag := i, ag
		g.Go(func() error {
			t := ag.CampaignType
			if amazonads.Supports(t, amazonads.KindKeyword) {
				got, err := f.remote.FetchKeywords(gctx, t, ag.ID)
				if err := f.soft(gctx, "keywords", ag.ID, t, err); err != nil {
					return err
				}
				keywords[i] = got
			}
			if amazonads.Supports(t, amazonads.KindNegativeKeyword) {
				got, err := f.remote.FetchNegativeKeywords(gctx, t, ag.ID)
				if err := f.soft(gctx, "negative keywords", ag.ID, t, err); err != nil {
					return err
				}
				negatives[i] = got
			}
			if amazonads.Supports(t, amazonads.KindTarget) {
				got, err := f.remote.FetchTargets(gctx, t, ag.ID)
				if err := f.soft(gctx, "targets", ag.ID, t, err); err != nil {
					return err
				}
				targets[i] = got
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return flatten(keywords), flatten(negatives), flatten(targets), nil
}

func flatten[T any](groups [][]T) []T {
	var out []T
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// syncMetrics refreshes the trailing report window for every owner kind. A failed report
// only loses its own rows; a failed write aborts the pass.
func (p *SyncProcessor) syncMetrics(ctx context.Context, remote Remote, stats *Stats) error {
	start, end := amazonads.ReportDateRange(p.now(), p.config.MetricsLookbackDays)

	kinds := []struct {
		kind    amazonads.ReportKind
		upsert  func(ctx context.Context, rows []store.MetricRow) (store.MetricUpsertResult, error)
		written *int
	}{
		{amazonads.ReportCampaigns, p.store.UpsertCampaignMetrics, &stats.CampaignMetrics},
		{amazonads.ReportKeywords, p.store.UpsertKeywordMetrics, &stats.KeywordMetrics},
		{amazonads.ReportTargets, p.store.UpsertProductTargetMetrics, &stats.ProductTargetMetrics},
	}

	for _, k := range kinds {
		rows, err := remote.FetchMetrics(ctx, k.kind, start, end)
		if err != nil {
			if fatalFetchError(ctx, err) {
				return fmt.Errorf("failed to fetch %s metrics: %w", k.kind, err)
			}
			p.logger.Warn(ctx, "metrics fetch incomplete",
				observability.Field{Key: "report_kind", Value: string(k.kind)},
				observability.Field{Key: "error", Value: err.Error()},
			)
			stats.FetchWarnings++
		}
		if len(rows) == 0 {
			continue
		}

		result, err := k.upsert(ctx, toStoreMetricRows(rows))
		if err != nil {
			return fmt.Errorf("failed to write %s metrics: %w", k.kind, err)
		}
		*k.written = result.Written
		stats.SkippedMetrics += result.Skipped
		if result.Skipped > 0 {
			p.logger.Warn(ctx, "dropped metric rows for unknown owners",
				observability.Field{Key: "report_kind", Value: string(k.kind)},
				observability.Field{Key: "skipped", Value: result.Skipped},
			)
		}
	}
	return nil
}
