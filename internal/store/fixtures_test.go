package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func nextID(prefix string) string {
	return prefix + uuid.New().String()[:12]
}

func ptr[T any](v T) *T { return &v }

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, testDB: testDB, ctx: context.Background()}
}

// CreateCampaign inserts a campaign as if a sync had mirrored it.
func (f *Fixtures) CreateCampaign(opts ...func(*Campaign)) Campaign {
	f.t.Helper()
	c := Campaign{
		ID:           nextID("c"),
		ProfileID:    "profile-1",
		CampaignType: CampaignTypeSponsoredProducts,
		Name:         "Test Campaign",
		State:        StateEnabled,
		Budget:       ptr(50.0),
		BudgetType:   ptr("DAILY"),
	}
	for _, fn := range opts {
		fn(&c)
	}
	created, err := f.testDB.Store.CreateCampaign(f.ctx, c)
	require.NoError(f.t, err, "failed to create test campaign")
	return created
}

// CreateAdGroup inserts an ad group under the given campaign.
func (f *Fixtures) CreateAdGroup(campaign Campaign, opts ...func(*AdGroup)) AdGroup {
	f.t.Helper()
	ag := AdGroup{
		ID:           nextID("ag"),
		CampaignID:   campaign.ID,
		CampaignType: campaign.CampaignType,
		Name:         "Test Ad Group",
		State:        StateEnabled,
		DefaultBid:   ptr(0.75),
	}
	for _, fn := range opts {
		fn(&ag)
	}
	created, err := f.testDB.Store.CreateAdGroup(f.ctx, ag)
	require.NoError(f.t, err, "failed to create test ad group")
	return created
}

// CreateKeyword inserts a keyword under the given ad group.
func (f *Fixtures) CreateKeyword(ag AdGroup, opts ...func(*Keyword)) Keyword {
	f.t.Helper()
	k := Keyword{
		ID:           nextID("k"),
		AdGroupID:    ag.ID,
		CampaignID:   ag.CampaignID,
		CampaignType: ag.CampaignType,
		KeywordText:  "running shoes",
		MatchType:    MatchTypeExact,
		State:        StateEnabled,
		Bid:          ptr(1.0),
	}
	for _, fn := range opts {
		fn(&k)
	}
	created, err := f.testDB.Store.CreateKeywords(f.ctx, []Keyword{k})
	require.NoError(f.t, err, "failed to create test keyword")
	return created[0]
}

// CreateRule inserts an enabled keyword rule.
func (f *Fixtures) CreateRule(opts ...func(*CreateRuleParams)) AutomationRule {
	f.t.Helper()
	p := CreateRuleParams{
		Name:            "High ACoS",
		ConditionType:   "acos_above",
		ConditionValue:  40,
		ConditionEntity: "keyword",
		ActionType:      "decrease_bid",
		ActionValue:     ptr(10.0),
		CooldownHours:   24,
		Enabled:         true,
	}
	for _, fn := range opts {
		fn(&p)
	}
	rule, err := f.testDB.Store.CreateRule(f.ctx, p)
	require.NoError(f.t, err, "failed to create test rule")
	return rule
}

// PushKeywordBid simulates the mutation pipeline persisting a bid at pushedAt.
func (f *Fixtures) PushKeywordBid(id string, bid float64, pushedAt time.Time) {
	f.t.Helper()
	require.NoError(f.t, f.testDB.Store.UpdateKeywordBid(f.ctx, id, bid, pushedAt))
}
