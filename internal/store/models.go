package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = nil
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// RawJSON holds an arbitrary JSON document (arrays included) stored in a JSONB column.
type RawJSON json.RawMessage

// Value implements the driver.Valuer interface for RawJSON
func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return []byte("[]"), nil
	}
	return []byte(r), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (r *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = nil
	case []byte:
		*r = append((*r)[:0], v...)
	case string:
		*r = RawJSON(v)
	default:
		return errors.New("incompatible type for RawJSON")
	}
	return nil
}

// MarshalJSON emits the stored document as-is.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON keeps a copy of the raw document.
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

type Campaign struct {
	ID            string     `db:"id" json:"id"`
	ProfileID     string     `db:"profile_id" json:"profile_id"`
	CampaignType  string     `db:"campaign_type" json:"campaign_type"`
	Name          string     `db:"name" json:"name"`
	State         string     `db:"state" json:"state"`
	Budget        *float64   `db:"budget" json:"budget"`
	BudgetType    *string    `db:"budget_type" json:"budget_type,omitempty"`
	TargetingType *string    `db:"targeting_type" json:"targeting_type,omitempty"`
	StartDate     *string    `db:"start_date" json:"start_date,omitempty"`
	EndDate       *string    `db:"end_date" json:"end_date,omitempty"`
	BrandEntityID *string    `db:"brand_entity_id" json:"brand_entity_id,omitempty"`
	Tactic        *string    `db:"tactic" json:"tactic,omitempty"`
	CostType      *string    `db:"cost_type" json:"cost_type,omitempty"`
	LastPushedAt  *time.Time `db:"last_pushed_at" json:"last_pushed_at,omitempty"`
	SyncedAt      *time.Time `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type AdGroup struct {
	ID           string     `db:"id" json:"id"`
	CampaignID   string     `db:"campaign_id" json:"campaign_id"`
	CampaignType string     `db:"campaign_type" json:"campaign_type"`
	Name         string     `db:"name" json:"name"`
	State        string     `db:"state" json:"state"`
	DefaultBid   *float64   `db:"default_bid" json:"default_bid"`
	LastPushedAt *time.Time `db:"last_pushed_at" json:"last_pushed_at,omitempty"`
	SyncedAt     *time.Time `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type Keyword struct {
	ID           string     `db:"id" json:"id"`
	AdGroupID    string     `db:"ad_group_id" json:"ad_group_id"`
	CampaignID   string     `db:"campaign_id" json:"campaign_id"`
	CampaignType string     `db:"campaign_type" json:"campaign_type"`
	KeywordText  string     `db:"keyword_text" json:"keyword_text"`
	MatchType    string     `db:"match_type" json:"match_type"`
	State        string     `db:"state" json:"state"`
	Bid          *float64   `db:"bid" json:"bid"`
	LastPushedAt *time.Time `db:"last_pushed_at" json:"last_pushed_at,omitempty"`
	SyncedAt     *time.Time `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type NegativeKeyword struct {
	ID           string     `db:"id" json:"id"`
	CampaignID   string     `db:"campaign_id" json:"campaign_id"`
	AdGroupID    *string    `db:"ad_group_id" json:"ad_group_id"`
	CampaignType string     `db:"campaign_type" json:"campaign_type"`
	KeywordText  string     `db:"keyword_text" json:"keyword_text"`
	MatchType    string     `db:"match_type" json:"match_type"`
	State        string     `db:"state" json:"state"`
	LastPushedAt *time.Time `db:"last_pushed_at" json:"last_pushed_at,omitempty"`
	SyncedAt     *time.Time `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Level reports whether the exclusion applies to the whole campaign or a single ad group.
func (n NegativeKeyword) Level() string {
	if n.AdGroupID == nil {
		return NegativeLevelCampaign
	}
	return NegativeLevelAdGroup
}

type ProductTarget struct {
	ID             string     `db:"id" json:"id"`
	AdGroupID      string     `db:"ad_group_id" json:"ad_group_id"`
	CampaignID     string     `db:"campaign_id" json:"campaign_id"`
	CampaignType   string     `db:"campaign_type" json:"campaign_type"`
	TargetType     string     `db:"target_type" json:"target_type"`
	ExpressionType string     `db:"expression_type" json:"expression_type"`
	Expression     RawJSON    `db:"expression" json:"expression"`
	State          string     `db:"state" json:"state"`
	Bid            *float64   `db:"bid" json:"bid"`
	LastPushedAt   *time.Time `db:"last_pushed_at" json:"last_pushed_at,omitempty"`
	SyncedAt       *time.Time `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// MetricRow is one day of performance for one owner entity.
type MetricRow struct {
	OwnerID     string  `db:"owner_id" json:"owner_id"`
	Date        string  `db:"date" json:"date"`
	Impressions int64   `db:"impressions" json:"impressions"`
	Clicks      int64   `db:"clicks" json:"clicks"`
	Cost        float64 `db:"cost" json:"cost"`
	Orders      int64   `db:"orders" json:"orders"`
	Sales       float64 `db:"sales" json:"sales"`
}

// MetricTotals is a sum of metric rows over a date range.
type MetricTotals struct {
	Impressions int64   `db:"impressions" json:"impressions"`
	Clicks      int64   `db:"clicks" json:"clicks"`
	Cost        float64 `db:"cost" json:"cost"`
	Orders      int64   `db:"orders" json:"orders"`
	Sales       float64 `db:"sales" json:"sales"`
}

// ACoS returns cost/sales as a percentage, or nil when there were no sales.
func (m MetricTotals) ACoS() *float64 {
	if m.Sales <= 0 {
		return nil
	}
	v := m.Cost / m.Sales * 100
	return &v
}

// ROAS returns sales/cost, or nil when nothing was spent.
func (m MetricTotals) ROAS() *float64 {
	if m.Cost <= 0 {
		return nil
	}
	v := m.Sales / m.Cost
	return &v
}

// CTR returns clicks/impressions as a percentage, or nil without impressions.
func (m MetricTotals) CTR() *float64 {
	if m.Impressions <= 0 {
		return nil
	}
	v := float64(m.Clicks) / float64(m.Impressions) * 100
	return &v
}

// CPC returns cost per click, or nil without clicks.
func (m MetricTotals) CPC() *float64 {
	if m.Clicks <= 0 {
		return nil
	}
	v := m.Cost / float64(m.Clicks)
	return &v
}

type KeywordPerformance struct {
	Keyword
	MetricTotals
}

type CampaignPerformance struct {
	Campaign
	MetricTotals
}

type SafetyLimit struct {
	ID                 int       `db:"id" json:"id"`
	MaxBidChangePct    float64   `db:"max_bid_change_pct" json:"max_bid_change_pct"`
	MaxBudgetChangePct float64   `db:"max_budget_change_pct" json:"max_budget_change_pct"`
	MinBidFloor        float64   `db:"min_bid_floor" json:"min_bid_floor"`
	MaxBidCeiling      float64   `db:"max_bid_ceiling" json:"max_bid_ceiling"`
	MaxDailySpend      *float64  `db:"max_daily_spend" json:"max_daily_spend"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type AutomationRule struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Description     *string    `db:"description" json:"description,omitempty"`
	ConditionType   string     `db:"condition_type" json:"condition_type"`
	ConditionValue  float64    `db:"condition_value" json:"condition_value"`
	ConditionEntity string     `db:"condition_entity" json:"condition_entity"`
	ActionType      string     `db:"action_type" json:"action_type"`
	ActionValue     *float64   `db:"action_value" json:"action_value,omitempty"`
	CooldownHours   int        `db:"cooldown_hours" json:"cooldown_hours"`
	Enabled         bool       `db:"enabled" json:"enabled"`
	ExecutionCount  int        `db:"execution_count" json:"execution_count"`
	LastExecutedAt  *time.Time `db:"last_executed_at" json:"last_executed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

type RuleExecution struct {
	ID         uuid.UUID `db:"id" json:"id"`
	RuleID     uuid.UUID `db:"rule_id" json:"rule_id"`
	EntityType string    `db:"entity_type" json:"entity_type"`
	EntityID   string    `db:"entity_id" json:"entity_id"`
	EntityName *string   `db:"entity_name" json:"entity_name,omitempty"`
	Result     string    `db:"result" json:"result"`
	Message    *string   `db:"message" json:"message,omitempty"`
	ExecutedAt time.Time `db:"executed_at" json:"executed_at"`
}

type AuditEntry struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	ActorType   string    `db:"actor_type" json:"actor_type"`
	ActorID     *string   `db:"actor_id" json:"actor_id,omitempty"`
	ActionType  string    `db:"action_type" json:"action_type"`
	EntityType  string    `db:"entity_type" json:"entity_type"`
	EntityID    string    `db:"entity_id" json:"entity_id"`
	EntityName  *string   `db:"entity_name" json:"entity_name,omitempty"`
	BeforeState JSONB     `db:"before_state" json:"before_state,omitempty"`
	AfterState  JSONB     `db:"after_state" json:"after_state,omitempty"`
	Reason      *string   `db:"reason" json:"reason,omitempty"`
	Success     bool      `db:"success" json:"success"`
	ErrorMsg    *string   `db:"error_msg" json:"error_msg,omitempty"`
}

type SyncState struct {
	ProfileID  string     `db:"profile_id" json:"profile_id"`
	LastSyncAt *time.Time `db:"last_sync_at" json:"last_sync_at"`
	SyncStatus string     `db:"sync_status" json:"sync_status"`
	Error      *string    `db:"error" json:"error,omitempty"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

type AmazonCredential struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ProfileID    *string   `db:"profile_id" json:"profile_id"`
	CountryCode  *string   `db:"country_code" json:"country_code,omitempty"`
	AccessToken  string    `db:"access_token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type AgentAPIKey struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	KeyHash    string     `db:"key_hash" json:"-"`
	KeySuffix  string     `db:"key_suffix" json:"-"`
	LastUsedAt *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Preview is the masked form shown in key listings.
func (k AgentAPIKey) Preview() string {
	return "****-****-" + k.KeySuffix
}

// CampaignCounts summarises a profile's campaigns by state
type CampaignCounts struct {
	Total   int `db:"total" json:"total"`
	Enabled int `db:"enabled" json:"enabled"`
	Paused  int `db:"paused" json:"paused"`
}

type AgentHeartbeat struct {
	ID         uuid.UUID `db:"id" json:"id"`
	AgentKeyID uuid.UUID `db:"agent_key_id" json:"agent_key_id"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type AgentMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Role      string    `db:"role" json:"role"`
	Content   string    `db:"content" json:"content"`
	Metadata  JSONB     `db:"metadata" json:"metadata"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
