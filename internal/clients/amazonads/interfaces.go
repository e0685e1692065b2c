package amazonads

import (
	"context"
	"time"
)

// AdsAPI is the advertising API surface used by sync, mutations and rules
type AdsAPI interface {
	ProfileID() string

	FetchAllCampaigns(ctx context.Context) ([]Campaign, error)
	FetchAdGroups(ctx context.Context, t CampaignType, campaignID string) ([]AdGroup, error)
	FetchKeywords(ctx context.Context, t CampaignType, adGroupID string) ([]Keyword, error)
	FetchNegativeKeywords(ctx context.Context, t CampaignType, adGroupID string) ([]NegativeKeyword, error)
	FetchCampaignNegativeKeywords(ctx context.Context, t CampaignType, campaignID string) ([]NegativeKeyword, error)
	FetchTargets(ctx context.Context, t CampaignType, adGroupID string) ([]Target, error)
	FetchMetrics(ctx context.Context, kind ReportKind, start, end time.Time) ([]MetricRow, error)

	UpdateKeywordBid(ctx context.Context, t CampaignType, keywordID string, bid float64) error
	UpdateTargetBid(ctx context.Context, t CampaignType, targetID string, bid float64) error
	UpdateCampaignBudget(ctx context.Context, t CampaignType, campaignID string, budget float64) error
	UpdateState(ctx context.Context, t CampaignType, kind EntityKind, id, state string) error
	Archive(ctx context.Context, t CampaignType, kind EntityKind, id string) error
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (string, error)
	CreateAdGroup(ctx context.Context, t CampaignType, in CreateAdGroupInput) (string, error)
	CreateKeywords(ctx context.Context, t CampaignType, in []CreateKeywordInput) ([]string, error)
	CreateNegativeKeyword(ctx context.Context, t CampaignType, in CreateNegativeKeywordInput) (string, error)
	CreateTargets(ctx context.Context, t CampaignType, in []CreateTargetInput) ([]string, error)
}

// AccountAPI covers the Login with Amazon flow and profile discovery
type AccountAPI interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	ListProfiles(ctx context.Context, accessToken string) ([]Profile, error)
}

var (
	_ AdsAPI     = (*Client)(nil)
	_ AccountAPI = (*OAuthClient)(nil)
	_ Refresher  = (*OAuthClient)(nil)
)
