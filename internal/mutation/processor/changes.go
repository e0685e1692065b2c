package processor

import (
	"adsync/internal/audit"
	"adsync/internal/clients/amazonads"
	"adsync/internal/safety"
	"adsync/internal/store"
	"context"
	"fmt"
	"time"
)

// ChangeBidRequest sets a new bid on a keyword or product target
type ChangeBidRequest struct {
	EntityType string
	EntityID   string
	Bid        float64
	Reason     string
}

// ChangeBudgetRequest sets a new daily budget on a campaign
type ChangeBudgetRequest struct {
	CampaignID string
	Budget     float64
	Reason     string
}

// ChangeStateRequest enables, pauses or archives an entity
type ChangeStateRequest struct {
	EntityType string
	EntityID   string
	State      string
	Reason     string
}

// ChangeBid validates the new bid against the safety limits, pushes it and mirrors it locally
func (p *MutationProcessor) ChangeBid(ctx context.Context, actor audit.Actor, req ChangeBidRequest) (Result, error) {
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionBidChange,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		AfterState: map[string]interface{}{"bid": req.Bid},
		Reason:     req.Reason,
	}

	var current float64
	pl := &plan{}

	switch req.EntityType {
	case audit.EntityKeyword:
		kw, err := p.store.GetKeywordByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "keyword", req.EntityID, err)
		}
		current = valueOrZero(kw.Bid)
		entry.EntityName = kw.KeywordText
		pl.campaignType = amazonads.CampaignType(kw.CampaignType)
		pl.kind = amazonads.KindKeyword
		pl.push = func(ctx context.Context, remote Remote) error {
			return remote.UpdateKeywordBid(ctx, pl.campaignType, kw.ID, req.Bid)
		}
		pl.persist = func(ctx context.Context, pushedAt time.Time) error {
			return p.store.UpdateKeywordBid(ctx, kw.ID, req.Bid, pushedAt)
		}
	case audit.EntityProductTarget:
		target, err := p.store.GetProductTargetByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "product target", req.EntityID, err)
		}
		current = valueOrZero(target.Bid)
		entry.EntityName = target.TargetType
		pl.campaignType = amazonads.CampaignType(target.CampaignType)
		pl.kind = amazonads.KindTarget
		pl.push = func(ctx context.Context, remote Remote) error {
			return remote.UpdateTargetBid(ctx, pl.campaignType, target.ID, req.Bid)
		}
		pl.persist = func(ctx context.Context, pushedAt time.Time) error {
			return p.store.UpdateProductTargetBid(ctx, target.ID, req.Bid, pushedAt)
		}
	default:
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
			fmt.Errorf("bids can only be changed on keywords and product targets, not %q", req.EntityType))
	}

	entry.BeforeState = map[string]interface{}{"bid": current}
	pl.entry = entry
	pl.validate = func(limits safety.Limits) error {
		return safety.ValidateBidChange(current, req.Bid, limits)
	}
	return p.execute(ctx, pl)
}

// ChangeBudget validates the new budget against the safety limits, pushes it and mirrors it locally
func (p *MutationProcessor) ChangeBudget(ctx context.Context, actor audit.Actor, req ChangeBudgetRequest) (Result, error) {
	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionBudgetChange,
		EntityType: audit.EntityCampaign,
		EntityID:   req.CampaignID,
		AfterState: map[string]interface{}{"budget": req.Budget},
		Reason:     req.Reason,
	}

	campaign, err := p.store.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return p.rejectLookup(ctx, entry, "campaign", req.CampaignID, err)
	}

	current := valueOrZero(campaign.Budget)
	entry.EntityName = campaign.Name
	entry.BeforeState = map[string]interface{}{"budget": current}

	pl := &plan{
		entry:        entry,
		campaignType: amazonads.CampaignType(campaign.CampaignType),
		kind:         amazonads.KindCampaign,
		validate: func(limits safety.Limits) error {
			return safety.ValidateBudgetChange(current, req.Budget, limits)
		},
	}
	pl.push = func(ctx context.Context, remote Remote) error {
		return remote.UpdateCampaignBudget(ctx, pl.campaignType, campaign.ID, req.Budget)
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		return p.store.UpdateCampaignBudget(ctx, campaign.ID, req.Budget, pushedAt)
	}
	return p.execute(ctx, pl)
}

// ChangeState enables, pauses or archives a campaign, ad group, keyword, negative keyword or product target
func (p *MutationProcessor) ChangeState(ctx context.Context, actor audit.Actor, req ChangeStateRequest) (Result, error) {
	return p.changeState(ctx, actor, req, audit.ActionStatusChange)
}

// RemoveNegativeKeyword archives a negative keyword
func (p *MutationProcessor) RemoveNegativeKeyword(ctx context.Context, actor audit.Actor, id, reason string) (Result, error) {
	return p.changeState(ctx, actor, ChangeStateRequest{
		EntityType: audit.EntityNegativeKeyword,
		EntityID:   id,
		State:      store.StateArchived,
		Reason:     reason,
	}, audit.ActionKeywordRemove)
}

// RemoveProductTarget archives a product target
func (p *MutationProcessor) RemoveProductTarget(ctx context.Context, actor audit.Actor, id, reason string) (Result, error) {
	return p.changeState(ctx, actor, ChangeStateRequest{
		EntityType: audit.EntityProductTarget,
		EntityID:   id,
		State:      store.StateArchived,
		Reason:     reason,
	}, audit.ActionTargetRemove)
}

func validState(state string) bool {
	switch state {
	case store.StateEnabled, store.StatePaused, store.StateArchived:
		return true
	}
	return false
}

func (p *MutationProcessor) changeState(ctx context.Context, actor audit.Actor, req ChangeStateRequest, action string) (Result, error) {
	entry := audit.Entry{
		Actor:      actor,
		ActionType: action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		AfterState: map[string]interface{}{"state": req.State},
		Reason:     req.Reason,
	}

	if !validState(req.State) {
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
			fmt.Errorf("state must be enabled, paused, or archived, got %q", req.State))
	}

	var (
		current string
		persist func(ctx context.Context, id, state string, pushedAt time.Time) error
	)
	pl := &plan{}

	switch req.EntityType {
	case audit.EntityCampaign:
		c, err := p.store.GetCampaignByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "campaign", req.EntityID, err)
		}
		current, entry.EntityName = c.State, c.Name
		pl.campaignType, pl.kind = amazonads.CampaignType(c.CampaignType), amazonads.KindCampaign
		persist = p.store.UpdateCampaignState
	case audit.EntityAdGroup:
		ag, err := p.store.GetAdGroupByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "ad group", req.EntityID, err)
		}
		current, entry.EntityName = ag.State, ag.Name
		pl.campaignType, pl.kind = amazonads.CampaignType(ag.CampaignType), amazonads.KindAdGroup
		persist = p.store.UpdateAdGroupState
	case audit.EntityKeyword:
		kw, err := p.store.GetKeywordByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "keyword", req.EntityID, err)
		}
		current, entry.EntityName = kw.State, kw.KeywordText
		pl.campaignType, pl.kind = amazonads.CampaignType(kw.CampaignType), amazonads.KindKeyword
		persist = p.store.UpdateKeywordState
	case audit.EntityNegativeKeyword:
		nk, err := p.store.GetNegativeKeywordByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "negative keyword", req.EntityID, err)
		}
		current, entry.EntityName = nk.State, nk.KeywordText
		pl.campaignType, pl.kind = amazonads.CampaignType(nk.CampaignType), amazonads.KindNegativeKeyword
		if nk.Level() == store.NegativeLevelCampaign {
			pl.kind = amazonads.KindCampaignNegativeKeyword
		}
		persist = p.store.UpdateNegativeKeywordState
	case audit.EntityProductTarget:
		target, err := p.store.GetProductTargetByID(ctx, req.EntityID)
		if err != nil {
			return p.rejectLookup(ctx, entry, "product target", req.EntityID, err)
		}
		current, entry.EntityName = target.State, target.TargetType
		pl.campaignType, pl.kind = amazonads.CampaignType(target.CampaignType), amazonads.KindTarget
		persist = p.store.UpdateProductTargetState
	default:
		return p.reject(ctx, entry, OutcomeFailed, ErrInvalidInput,
			fmt.Errorf("unknown entity type %q", req.EntityType))
	}

	entry.BeforeState = map[string]interface{}{"state": current}
	pl.entry = entry
	pl.push = func(ctx context.Context, remote Remote) error {
		if req.State == store.StateArchived {
			return remote.Archive(ctx, pl.campaignType, pl.kind, req.EntityID)
		}
		return remote.UpdateState(ctx, pl.campaignType, pl.kind, req.EntityID, req.State)
	}
	pl.persist = func(ctx context.Context, pushedAt time.Time) error {
		return persist(ctx, req.EntityID, req.State, pushedAt)
	}
	return p.execute(ctx, pl)
}
