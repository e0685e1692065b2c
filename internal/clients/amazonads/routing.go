package amazonads

import (
	"fmt"
)

// resource describes one remote collection for one campaign type
type resource struct {
	Path      string
	MediaType string
	ItemsKey  string
	IDField   string
}

// capabilities is everything that differs between campaign types. Adding a campaign
// type means adding one entry to routes.
type capabilities struct {
	AdProduct    string
	NestedBudget bool
	Resources    map[EntityKind]resource
	ReportTypes  map[ReportKind]string

	campaignBody func(in CreateCampaignInput) (map[string]interface{}, error)
	adGroupBody  func(in CreateAdGroupInput) map[string]interface{}
	targetBody   func(in CreateTargetInput) map[string]interface{}
}

var routes = map[CampaignType]capabilities{
	SponsoredProducts: {
		AdProduct:    "SPONSORED_PRODUCTS",
		NestedBudget: true,
		Resources: map[EntityKind]resource{
			KindCampaign:                {"/sp/campaigns", "application/vnd.spCampaign.v3+json", "campaigns", "campaignId"},
			KindAdGroup:                 {"/sp/adGroups", "application/vnd.spAdGroup.v3+json", "adGroups", "adGroupId"},
			KindKeyword:                 {"/sp/keywords", "application/vnd.spKeyword.v3+json", "keywords", "keywordId"},
			KindNegativeKeyword:         {"/sp/negativeKeywords", "application/vnd.spNegativeKeyword.v3+json", "negativeKeywords", "keywordId"},
			KindCampaignNegativeKeyword: {"/sp/campaignNegativeKeywords", "application/vnd.spCampaignNegativeKeyword.v3+json", "campaignNegativeKeywords", "keywordId"},
			KindTarget:                  {"/sp/targets", "application/vnd.spTargetingClause.v3+json", "targetingClauses", "targetId"},
		},
		ReportTypes: map[ReportKind]string{
			ReportCampaigns: "spCampaigns",
			ReportKeywords:  "spKeywords",
			ReportTargets:   "spTargets",
		},
		campaignBody: spCampaignBody,
		adGroupBody: func(in CreateAdGroupInput) map[string]interface{} {
			return map[string]interface{}{
				"campaignId": in.CampaignID,
				"name":       in.Name,
				"state":      "ENABLED",
				"defaultBid": in.DefaultBid,
			}
		},
		targetBody: func(in CreateTargetInput) map[string]interface{} {
			return map[string]interface{}{
				"campaignId":     in.CampaignID,
				"adGroupId":      in.AdGroupID,
				"expressionType": "manual",
				"expression":     in.Expression,
				"state":          "ENABLED",
				"bid":            in.Bid,
			}
		},
	},
	SponsoredBrands: {
		AdProduct: "SPONSORED_BRANDS",
		Resources: map[EntityKind]resource{
			KindCampaign:                {"/sb/v4/campaigns", "application/vnd.sbcampaignresource.v4+json", "campaigns", "campaignId"},
			KindAdGroup:                 {"/sb/v4/adGroups", "application/vnd.sbadgroupresource.v4+json", "adGroups", "adGroupId"},
			KindKeyword:                 {"/sb/keywords", "application/vnd.sbkeywordresource.v4+json", "keywords", "keywordId"},
			KindNegativeKeyword:         {"/sb/negativeKeywords", "application/vnd.sbnegativekeywordresource.v4+json", "negativeKeywords", "keywordId"},
			KindCampaignNegativeKeyword: {"/sb/campaignNegativeKeywords", "application/vnd.sbcampaignnegativekeywordresource.v4+json", "campaignNegativeKeywords", "keywordId"},
			KindTarget:                  {"/sb/targets", "application/vnd.sbtargetresource.v4+json", "targets", "targetId"},
		},
		ReportTypes: map[ReportKind]string{
			ReportCampaigns: "sbCampaigns",
			ReportKeywords:  "sbKeywords",
			ReportTargets:   "sbTargets",
		},
		campaignBody: sbCampaignBody,
		adGroupBody: func(in CreateAdGroupInput) map[string]interface{} {
			return map[string]interface{}{
				"campaignId": in.CampaignID,
				"name":       in.Name,
				"state":      "ENABLED",
				"bid":        in.DefaultBid,
			}
		},
		targetBody: func(in CreateTargetInput) map[string]interface{} {
			return map[string]interface{}{
				"campaignId":  in.CampaignID,
				"adGroupId":   in.AdGroupID,
				"expressions": in.Expression,
				"state":       "ENABLED",
				"bid":         in.Bid,
			}
		},
	},
	SponsoredDisplay: {
		AdProduct: "SPONSORED_DISPLAY",
		Resources: map[EntityKind]resource{
			KindCampaign: {"/sd/campaigns", "application/vnd.sdcampaign.v3+json", "campaigns", "campaignId"},
			KindAdGroup:  {"/sd/adGroups", "application/vnd.sdadgroup.v3+json", "adGroups", "adGroupId"},
			KindTarget:   {"/sd/targets", "application/vnd.sdtarget.v3+json", "targets", "targetId"},
		},
		ReportTypes: map[ReportKind]string{
			ReportCampaigns: "sdCampaigns",
			ReportTargets:   "sdTargets",
		},
		campaignBody: sdCampaignBody,
		adGroupBody: func(in CreateAdGroupInput) map[string]interface{} {
			bidOptimization := in.BidOptimization
			if bidOptimization == "" {
				bidOptimization = "clicks"
			}
			return map[string]interface{}{
				"campaignId":      in.CampaignID,
				"name":            in.Name,
				"state":           "ENABLED",
				"defaultBid":      in.DefaultBid,
				"bidOptimization": bidOptimization,
			}
		},
		targetBody: func(in CreateTargetInput) map[string]interface{} {
			return map[string]interface{}{
				"adGroupId":      in.AdGroupID,
				"expressionType": "manual",
				"expression":     in.Expression,
				"state":          "ENABLED",
				"bid":            in.Bid,
			}
		},
	},
}

// Campaign body builders expect input already passed through WithDefaults.

func spCampaignBody(in CreateCampaignInput) (map[string]interface{}, error) {
	body := map[string]interface{}{
		"name":           in.Name,
		"state":          "ENABLED",
		"budget":         map[string]interface{}{"budget": in.Budget, "budgetType": "DAILY"},
		"targetingType":  in.TargetingType,
		"startDate":      in.StartDate,
		"dynamicBidding": map[string]interface{}{"strategy": in.BiddingStrategy},
	}
	if in.EndDate != "" {
		body["endDate"] = in.EndDate
	}
	return body, nil
}

func sbCampaignBody(in CreateCampaignInput) (map[string]interface{}, error) {
	if in.BrandEntityID == "" {
		return nil, fmt.Errorf("%w: brand entity id is required for SB campaigns", ErrInvalidInput)
	}
	body := map[string]interface{}{
		"name":          in.Name,
		"state":         "ENABLED",
		"budget":        in.Budget,
		"budgetType":    "DAILY",
		"brandEntityId": in.BrandEntityID,
		"startDate":     in.StartDate,
	}
	if in.EndDate != "" {
		body["endDate"] = in.EndDate
	}
	return body, nil
}

func sdCampaignBody(in CreateCampaignInput) (map[string]interface{}, error) {
	if in.Tactic != "T00020" && in.Tactic != "T00030" {
		return nil, fmt.Errorf("%w: unknown SD tactic %q", ErrInvalidInput, in.Tactic)
	}
	body := map[string]interface{}{
		"name":       in.Name,
		"state":      "ENABLED",
		"budget":     in.Budget,
		"budgetType": "DAILY",
		"tactic":     in.Tactic,
		"costType":   in.CostType,
		"startDate":  in.StartDate,
	}
	if in.EndDate != "" {
		body["endDate"] = in.EndDate
	}
	return body, nil
}

func capabilitiesFor(t CampaignType) (capabilities, error) {
	caps, ok := routes[t]
	if !ok {
		return capabilities{}, fmt.Errorf("%w: unknown campaign type %q", ErrUnsupportedOperation, t)
	}
	return caps, nil
}

// route resolves the remote collection for kind under campaign type t
func route(t CampaignType, kind EntityKind) (resource, error) {
	caps, err := capabilitiesFor(t)
	if err != nil {
		return resource{}, err
	}
	res, ok := caps.Resources[kind]
	if !ok {
		return resource{}, fmt.Errorf("%w: %s has no %s", ErrUnsupportedOperation, t, kind)
	}
	return res, nil
}

// Supports reports whether campaign type t has remote entities of the given kind
func Supports(t CampaignType, kind EntityKind) bool {
	_, err := route(t, kind)
	return err == nil
}
