package processor

import (
	"adsync/internal/audit"
	"adsync/internal/clients/amazonads"
	"adsync/internal/safety"
	"adsync/internal/store"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const localBudgetType = "DAILY"

// CreateCampaignRequest creates a campaign of any type
type CreateCampaignRequest struct {
	Type            amazonads.CampaignType
	Name            string
	Budget          float64
	StartDate       string // YYYYMMDD, defaults to today
	EndDate         string
	TargetingType   string // SP: MANUAL or AUTO
	BiddingStrategy string // SP
	BrandEntityID   string // SB
	Tactic          string // SD: T00020 or T00030
	CostType        string // SD: cpc or vcpm
	Reason          string
}

// CreateAdGroupRequest creates an ad group under a campaign
type CreateAdGroupRequest struct {
	CampaignID      string
	Name            string
	DefaultBid      float64
	BidOptimization string
	Reason          string
}

// KeywordSpec is one keyword to create
type KeywordSpec struct {
	KeywordText string
	MatchType   string
	Bid         *float64
}

// CreateKeywordsRequest creates keywords in one ad group
type CreateKeywordsRequest struct {
	AdGroupID string
	Keywords  []KeywordSpec
	Reason    string
}

// CreateNegativeKeywordRequest creates a campaign-level negative, or an ad-group-level one when AdGroupID is set
type CreateNegativeKeywordRequest struct {
	CampaignID  string
	AdGroupID   string
	KeywordText string
	MatchType   string
	Reason      string
}

// TargetSpec is one product target to create
type TargetSpec struct {
	Expression []amazonads.TargetExpression
	Bid        *float64
}

// CreateProductTargetsRequest creates product targets in one ad group
type CreateProductTargetsRequest struct {
	AdGroupID string
	Targets   []TargetSpec
	Reason    string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateCampaign creates the campaign remotely and mirrors it with the Amazon-assigned id
func (p *MutationProcessor) CreateCampaign(ctx context.Context, actor audit.Actor, req CreateCampaignRequest) (Result, error) {
	input := amazonads.CreateCampaignInput{
		Type:            req.Type,
		Name:            req.Name,
		Budget:          req.Budget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TargetingType:   req.TargetingType,
		BiddingStrategy: req.BiddingStrategy,
		BrandEntityID:   req.BrandEntityID,
		Tactic:          req.Tactic,
		CostType:        req.CostType,
	}.WithDefaults()
	if input.StartDate == "" {
		input.StartDate = p.now().Format("20060102")
	}

	after := map[string]interface{}{
		"name":   input.Name,
		"budget": input.Budget,
		"type":   string(input.Type),
		"state":  store.StateEnabled,
	}
	local := store.Campaign{
		CampaignType: string(input.Type),
		Name:         input.Name,
		State:        store.StateEnabled,
		Budget:       &input.Budget,
		BudgetType:   optional(localBudgetType),
		StartDate:    optional(input.StartDate),
		EndDate:      optional(input.EndDate),
	}
	switch input.Type {
	case amazonads.SponsoredProducts:
		after["targeting_type"] = input.TargetingType
		local.TargetingType = optional(input.TargetingType)
	case amazonads.SponsoredBrands:
		after["brand_entity_id"] = input.BrandEntityID
		local.BrandEntityID = optional(input.BrandEntityID)
	case amazonads.SponsoredDisplay:
		after["tactic"], after["cost_type"] = input.Tactic, input.CostType
		local.Tactic, local.CostType = optional(input.Tactic), optional(input.CostType)
	}

	pl := &plan{
		entry: audit.Entry{
			Actor:      actor,
			ActionType: audit.ActionCampaignCreate,
			EntityType: audit.EntityCampaign,
			EntityName: req.Name,
			AfterState: after,
			Reason:     req.Reason,
		},
		campaignType: input.Type,
		kind:         amazonads.KindCampaign,
		validate: func(limits safety.Limits) error {
			return safety.ValidateBudgetChange(0, input.Budget, limits)
		},
	}
	pl.push = func(ctx context.Context, remote Remote) error {
		id, err := remote.CreateCampaign(ctx, input)
		if err != nil {
			return err
		}
		pl.entry.EntityID, local.ID, local.ProfileID = id, id, remote.ProfileID()
		after["id"] = id
		return nil
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		local.LastPushedAt = &pushedAt
		_, err := p.store.CreateCampaign(ctx, local)
		return err
	}
	return p.execute(ctx, pl)
}

// CreateAdGroup creates an ad group under an existing campaign
func (p *MutationProcessor) CreateAdGroup(ctx context.Context, actor audit.Actor, req CreateAdGroupRequest) (Result, error) {
	after := map[string]interface{}{"name": req.Name, "campaign_id": req.CampaignID, "state": store.StateEnabled}
	if req.DefaultBid > 0 {
		after["default_bid"] = req.DefaultBid
	}
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionAdGroupCreate,
		EntityType: audit.EntityAdGroup,
		EntityName: req.Name,
		AfterState: after,
		Reason:     req.Reason,
	}

	campaign, err := p.store.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return p.rejectLookup(ctx, entry, "campaign", req.CampaignID, err)
	}
	t := amazonads.CampaignType(campaign.CampaignType)
	if t != amazonads.SponsoredBrands && req.DefaultBid <= 0 {
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
			fmt.Errorf("defaultBid is required for %s ad groups", t))
	}

	local := store.AdGroup{
		CampaignID:   campaign.ID,
		CampaignType: campaign.CampaignType,
		Name:         req.Name,
		State:        store.StateEnabled,
	}
	if req.DefaultBid > 0 {
		bid := req.DefaultBid
		local.DefaultBid = &bid
	}

	pl := &plan{entry: entry, campaignType: t, kind: amazonads.KindAdGroup}
	if req.DefaultBid > 0 {
		pl.validate = func(limits safety.Limits) error {
			return safety.ValidateAbsoluteBid(req.DefaultBid, limits)
		}
	}
	pl.push = func(ctx context.Context, remote Remote) error {
		id, err := remote.CreateAdGroup(ctx, t, amazonads.CreateAdGroupInput{
			CampaignID:      campaign.ID,
			Name:            req.Name,
			DefaultBid:      req.DefaultBid,
			BidOptimization: req.BidOptimization,
		})
		if err != nil {
			return err
		}
		pl.entry.EntityID, local.ID = id, id
		after["id"] = id
		return nil
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		local.LastPushedAt = &pushedAt
		_, err := p.store.CreateAdGroup(ctx, local)
		return err
	}
	return p.execute(ctx, pl)
}

// CreateKeywords creates a batch of keywords; any failed item fails the whole call
func (p *MutationProcessor) CreateKeywords(ctx context.Context, actor audit.Actor, req CreateKeywordsRequest) (Result, error) {
	texts := make([]string, len(req.Keywords))
	specs := make([]map[string]interface{}, len(req.Keywords))
	for i, k := range req.Keywords {
		texts[i] = k.KeywordText
		specs[i] = map[string]interface{}{"keyword_text": k.KeywordText, "match_type": k.MatchType}
		if k.Bid != nil {
			specs[i]["bid"] = *k.Bid
		}
	}
	after := map[string]interface{}{"ad_group_id": req.AdGroupID, "keywords": specs}
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionKeywordAdd,
		EntityType: audit.EntityKeyword,
		EntityName: strings.Join(texts, ", "),
		AfterState: after,
		Reason:     req.Reason,
	}

	if len(req.Keywords) == 0 {
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput, fmt.Errorf("at least one keyword is required"))
	}
	for _, k := range req.Keywords {
		switch k.MatchType {
		case store.MatchTypeExact, store.MatchTypePhrase, store.MatchTypeBroad:
		default:
			return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
				fmt.Errorf("matchType must be exact, phrase, or broad, got %q", k.MatchType))
		}
	}

	adGroup, err := p.store.GetAdGroupByID(ctx, req.AdGroupID)
	if err != nil {
		return p.rejectLookup(ctx, entry, "ad group", req.AdGroupID, err)
	}
	t := amazonads.CampaignType(adGroup.CampaignType)
	after["campaign_id"] = adGroup.CampaignID

	inputs := make([]amazonads.CreateKeywordInput, len(req.Keywords))
	for i, k := range req.Keywords {
		inputs[i] = amazonads.CreateKeywordInput{
			CampaignID:  adGroup.CampaignID,
			AdGroupID:   adGroup.ID,
			KeywordText: k.KeywordText,
			MatchType:   k.MatchType,
			Bid:         k.Bid,
		}
	}

	pl := &plan{
		entry:        entry,
		campaignType: t,
		kind:         amazonads.KindKeyword,
		validate: func(limits safety.Limits) error {
			for _, k := range req.Keywords {
				if k.Bid == nil {
					continue
				}
				if err := safety.ValidateAbsoluteBid(*k.Bid, limits); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pl.push = func(ctx context.Context, remote Remote) error {
		ids, err := remote.CreateKeywords(ctx, t, inputs)
		if err != nil {
			// Items that did succeed stay visible to operators; the next sync mirrors them
			if created := nonEmpty(ids); len(created) > 0 {
				after["created_ids"] = created
			}
			return err
		}
		if len(ids) != len(inputs) {
			return amazonads.ErrEmptyResponse
		}
		pl.ids = ids
		pl.entry.EntityID = strings.Join(ids, ",")
		return nil
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		rows := make([]store.Keyword, len(pl.ids))
		for i, id := range pl.ids {
			rows[i] = store.Keyword{
				ID:           id,
				AdGroupID:    adGroup.ID,
				CampaignID:   adGroup.CampaignID,
				CampaignType: adGroup.CampaignType,
				KeywordText:  req.Keywords[i].KeywordText,
				MatchType:    req.Keywords[i].MatchType,
				State:        store.StateEnabled,
				Bid:          req.Keywords[i].Bid,
				LastPushedAt: &pushedAt,
			}
		}
		_, err := p.store.CreateKeywords(ctx, rows)
		return err
	}
	return p.execute(ctx, pl)
}

// CreateNegativeKeyword creates a campaign- or ad-group-level negative keyword
func (p *MutationProcessor) CreateNegativeKeyword(ctx context.Context, actor audit.Actor, req CreateNegativeKeywordRequest) (Result, error) {
	after := map[string]interface{}{
		"campaign_id": req.CampaignID,
		"match_type":  req.MatchType,
		"level":       store.NegativeLevelCampaign,
	}
	if req.AdGroupID != "" {
		after["ad_group_id"] = req.AdGroupID
		after["level"] = store.NegativeLevelAdGroup
	}
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionKeywordAdd,
		EntityType: audit.EntityNegativeKeyword,
		EntityName: req.KeywordText,
		AfterState: after,
		Reason:     req.Reason,
	}

	if req.MatchType != store.MatchTypeNegativeExact && req.MatchType != store.MatchTypeNegativePhrase {
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
			fmt.Errorf("matchType must be negativeExact or negativePhrase, got %q", req.MatchType))
	}

	campaign, err := p.store.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return p.rejectLookup(ctx, entry, "campaign", req.CampaignID, err)
	}

	kind := amazonads.KindCampaignNegativeKeyword
	if req.AdGroupID != "" {
		adGroup, err := p.store.GetAdGroupByID(ctx, req.AdGroupID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "ad group", req.AdGroupID, err)
		}
		if adGroup.CampaignID != campaign.ID {
			return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
				fmt.Errorf("ad group %s does not belong to campaign %s", adGroup.ID, campaign.ID))
		}
		kind = amazonads.KindNegativeKeyword
	}

	t := amazonads.CampaignType(campaign.CampaignType)
	local := store.NegativeKeyword{
		CampaignID:   campaign.ID,
		AdGroupID:    optional(req.AdGroupID),
		CampaignType: campaign.CampaignType,
		KeywordText:  req.KeywordText,
		MatchType:    req.MatchType,
		State:        store.StateEnabled,
	}

	pl := &plan{entry: entry, campaignType: t, kind: kind}
	pl.push = func(ctx context.Context, remote Remote) error {
		id, err := remote.CreateNegativeKeyword(ctx, t, amazonads.CreateNegativeKeywordInput{
			CampaignID:  campaign.ID,
			AdGroupID:   req.AdGroupID,
			KeywordText: req.KeywordText,
			MatchType:   req.MatchType,
		})
		if err != nil {
			return err
		}
		pl.entry.EntityID, local.ID = id, id
		after["id"] = id
		return nil
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		local.LastPushedAt = &pushedAt
		_, err := p.store.CreateNegativeKeyword(ctx, local)
		return err
	}
	return p.execute(ctx, pl)
}

// CreateProductTargets creates a batch of product targets; any failed item fails the whole call
func (p *MutationProcessor) CreateProductTargets(ctx context.Context, actor audit.Actor, req CreateProductTargetsRequest) (Result, error) {
	specs := make([]map[string]interface{}, len(req.Targets))
	for i, target := range req.Targets {
		specs[i] = map[string]interface{}{"expression": target.Expression}
		if target.Bid != nil {
			specs[i]["bid"] = *target.Bid
		}
	}
	after := map[string]interface{}{"ad_group_id": req.AdGroupID, "targets": specs}
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionTargetAdd,
		EntityType: audit.EntityProductTarget,
		EntityName: fmt.Sprintf("%d targets", len(req.Targets)),
		AfterState: after,
		Reason:     req.Reason,
	}

	if len(req.Targets) == 0 {
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput, fmt.Errorf("at least one target is required"))
	}
	expressions := make([]json.RawMessage, len(req.Targets))
	for i, target := range req.Targets {
		if len(target.Expression) == 0 {
			return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput, fmt.Errorf("each target needs an expression"))
		}
		raw, err := json.Marshal(target.Expression)
		if err != nil {
			return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput, fmt.Errorf("invalid target expression: %w", err))
		}
		expressions[i] = raw
	}

	adGroup, err := p.store.GetAdGroupByID(ctx, req.AdGroupID)
	if err != nil {
		return p.rejectLookup(ctx, entry, "ad group", req.AdGroupID, err)
	}
	t := amazonads.CampaignType(adGroup.CampaignType)
	after["campaign_id"] = adGroup.CampaignID

	inputs := make([]amazonads.CreateTargetInput, len(req.Targets))
	for i, target := range req.Targets {
		inputs[i] = amazonads.CreateTargetInput{
			CampaignID: adGroup.CampaignID,
			AdGroupID:  adGroup.ID,
			Expression: target.Expression,
			Bid:        target.Bid,
		}
	}

	pl := &plan{
		entry:        entry,
		campaignType: t,
		kind:         amazonads.KindTarget,
		validate: func(limits safety.Limits) error {
			for _, target := range req.Targets {
				if target.Bid == nil {
					continue
				}
				if err := safety.ValidateAbsoluteBid(*target.Bid, limits); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pl.push = func(ctx context.Context, remote Remote) error {
		ids, err := remote.CreateTargets(ctx, t, inputs)
		if err != nil {
			if created := nonEmpty(ids); len(created) > 0 {
				after["created_ids"] = created
			}
			return err
		}
		if len(ids) != len(inputs) {
			return amazonads.ErrEmptyResponse
		}
		pl.ids = ids
		pl.entry.EntityID = strings.Join(ids, ",")
		return nil
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		rows := make([]store.ProductTarget, len(pl.ids))
		for i, id := range pl.ids {
			rows[i] = store.ProductTarget{
				ID:             id,
				AdGroupID:      adGroup.ID,
				CampaignID:     adGroup.CampaignID,
				CampaignType:   adGroup.CampaignType,
				TargetType:     amazonads.TargetTypeFor(req.Targets[i].Expression),
				ExpressionType: "manual",
				Expression:     store.RawJSON(expressions[i]),
				State:          store.StateEnabled,
				Bid:            req.Targets[i].Bid,
				LastPushedAt:   &pushedAt,
			}
		}
		_, err := p.store.CreateProductTargets(ctx, rows)
		return err
	}
	return p.execute(ctx, pl)
}

func nonEmpty(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
