package processor

import (
	"adsync/internal/clients/amazonads"
	"adsync/internal/store"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toStoreCampaign(profileID string, c amazonads.Campaign) store.Campaign {
	return store.Campaign{
		ID:            c.ID,
		ProfileID:     profileID,
		CampaignType:  string(c.Type),
		Name:          c.Name,
		State:         c.State,
		Budget:        c.Budget,
		BudgetType:    optional(c.BudgetType),
		TargetingType: optional(c.TargetingType),
		StartDate:     optional(c.StartDate),
		EndDate:       optional(c.EndDate),
		BrandEntityID: optional(c.BrandEntityID),
		Tactic:        optional(c.Tactic),
		CostType:      optional(c.CostType),
	}
}

func toStoreAdGroup(ag amazonads.AdGroup) store.AdGroup {
	return store.AdGroup{
		ID:           ag.ID,
		CampaignID:   ag.CampaignID,
		CampaignType: string(ag.CampaignType),
		Name:         ag.Name,
		State:        ag.State,
		DefaultBid:   ag.DefaultBid,
	}
}

func toStoreKeyword(k amazonads.Keyword) store.Keyword {
	return store.Keyword{
		ID:           k.ID,
		AdGroupID:    k.AdGroupID,
		CampaignID:   k.CampaignID,
		CampaignType: string(k.CampaignType),
		KeywordText:  k.KeywordText,
		MatchType:    k.MatchType,
		State:        k.State,
		Bid:          k.Bid,
	}
}

func toStoreNegativeKeyword(n amazonads.NegativeKeyword) store.NegativeKeyword {
	return store.NegativeKeyword{
		ID:           n.ID,
		CampaignID:   n.CampaignID,
		AdGroupID:    optional(n.AdGroupID),
		CampaignType: string(n.CampaignType),
		KeywordText:  n.KeywordText,
		MatchType:    n.MatchType,
		State:        n.State,
	}
}

func toStoreProductTarget(t amazonads.Target) store.ProductTarget {
	return store.ProductTarget{
		ID:             t.ID,
		AdGroupID:      t.AdGroupID,
		CampaignID:     t.CampaignID,
		CampaignType:   string(t.CampaignType),
		TargetType:     t.TargetType,
		ExpressionType: t.ExpressionType,
		Expression:     store.RawJSON(t.Expression),
		State:          t.State,
		Bid:            t.Bid,
	}
}

func toStoreMetricRows(rows []amazonads.MetricRow) []store.MetricRow {
	out := make([]store.MetricRow, len(rows))
	for i, r := range rows {
		out[i] = store.MetricRow(r)
	}
	return out
}
