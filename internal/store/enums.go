package store

// Campaign type ENUMs
const (
	CampaignTypeSponsoredProducts = "SP"
	CampaignTypeSponsoredBrands   = "SB"
	CampaignTypeSponsoredDisplay  = "SD"
)

// Entity state ENUMs
const (
	StateEnabled  = "enabled"
	StatePaused   = "paused"
	StateArchived = "archived"
)

// Match type ENUMs
const (
	MatchTypeExact          = "exact"
	MatchTypePhrase         = "phrase"
	MatchTypeBroad          = "broad"
	MatchTypeNegativeExact  = "negativeExact"
	MatchTypeNegativePhrase = "negativePhrase"
)

const (
	NegativeLevelCampaign = "campaign"
	NegativeLevelAdGroup  = "ad_group"
)

// Sync status ENUMs
const (
	SyncStatusIdle      = "idle"
	SyncStatusSyncing   = "syncing"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// Rule execution result ENUMs
const (
	RuleResultSuccess = "success"
	RuleResultSkipped = "skipped"
	RuleResultFailed  = "failed"
)

// Agent message role ENUMs
const (
	MessageRoleUser  = "user"
	MessageRoleAgent = "agent"
)
