package amazonads

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CampaignType selects the Amazon Ads sub-platform a campaign lives on
type CampaignType string

const (
	SponsoredProducts CampaignType = "SP"
	SponsoredBrands   CampaignType = "SB"
	SponsoredDisplay  CampaignType = "SD"
)

// CampaignTypes lists every supported campaign type in fetch order
var CampaignTypes = []CampaignType{SponsoredProducts, SponsoredBrands, SponsoredDisplay}

// Valid reports whether t is a known campaign type
func (t CampaignType) Valid() bool {
	_, ok := routes[t]
	return ok
}

// EntityKind names a remote resource
type EntityKind string

const (
	KindCampaign                EntityKind = "campaign"
	KindAdGroup                 EntityKind = "adGroup"
	KindKeyword                 EntityKind = "keyword"
	KindNegativeKeyword         EntityKind = "negativeKeyword"
	KindCampaignNegativeKeyword EntityKind = "campaignNegativeKeyword"
	KindTarget                  EntityKind = "target"
)

// Campaign is a campaign normalized across campaign types
type Campaign struct {
	ID            string
	Type          CampaignType
	Name          string
	State         string
	Budget        *float64
	BudgetType    string
	TargetingType string
	StartDate     string
	EndDate       string
	BrandEntityID string
	Tactic        string
	CostType      string
}

type AdGroup struct {
	ID           string
	CampaignID   string
	CampaignType CampaignType
	Name         string
	State        string
	DefaultBid   *float64
}

type Keyword struct {
	ID           string
	AdGroupID    string
	CampaignID   string
	CampaignType CampaignType
	KeywordText  string
	MatchType    string
	State        string
	Bid          *float64
}

// NegativeKeyword has an empty AdGroupID when it applies to the whole campaign
type NegativeKeyword struct {
	ID           string
	CampaignID   string
	AdGroupID    string
	CampaignType CampaignType
	KeywordText  string
	MatchType    string
	State        string
}

type Target struct {
	ID             string
	AdGroupID      string
	CampaignID     string
	CampaignType   CampaignType
	TargetType     string
	ExpressionType string
	Expression     json.RawMessage
	State          string
	Bid            *float64
}

// TargetExpression is one predicate of a targeting clause
type TargetExpression struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// MetricRow is one day of report data for one entity. Date is YYYYMMDD.
type MetricRow struct {
	OwnerID     string
	Date        string
	Impressions int64
	Clicks      int64
	Cost        float64
	Orders      int64
	Sales       float64
}

// flexID accepts ids sent either as JSON numbers or strings
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

func localState(s string) string {
	return strings.ToLower(s)
}

func wireState(s string) string {
	return strings.ToUpper(s)
}

// localMatchType maps EXACT to exact and NEGATIVE_EXACT to negativeExact
func localMatchType(s string) string {
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "NEGATIVE"); ok {
		rest = strings.TrimPrefix(rest, "_")
		if rest != "" {
			return "negative" + rest[:1] + strings.ToLower(rest[1:])
		}
	}
	return strings.ToLower(s)
}

// wireMatchType maps exact to EXACT and negativeExact to NEGATIVE_EXACT
func wireMatchType(s string) string {
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "NEGATIVE") && !strings.HasPrefix(upper, "NEGATIVE_") {
		return strings.Replace(upper, "NEGATIVE", "NEGATIVE_", 1)
	}
	return upper
}

// TargetTypeFor derives the local target discriminator from its first predicate
func TargetTypeFor(expressions []TargetExpression) string {
	if len(expressions) == 0 {
		return "auto"
	}
	t := strings.ToLower(expressions[0].Type)
	switch {
	case strings.Contains(t, "category"):
		return "category"
	case strings.Contains(t, "brand"):
		return "brand"
	case strings.Contains(t, "asin"):
		return "asin"
	case strings.Contains(t, "audience"), strings.Contains(t, "views"), strings.Contains(t, "purchases"):
		return "audience"
	default:
		return t
	}
}
