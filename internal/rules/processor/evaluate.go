package processor

import (
	"adsync/internal/audit"
	mutation "adsync/internal/mutation/processor"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ExecutionResult is the outcome of one rule against one entity
type ExecutionResult struct {
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Result     string `json:"result"`
	Message    string `json:"message,omitempty"`
}

// RunResult collects everything one rule did in one run
type RunResult struct {
	RuleID    uuid.UUID         `json:"rule_id"`
	RuleName  string            `json:"rule_name"`
	Results   []ExecutionResult `json:"results"`
	Successes int               `json:"successes"`
	Error     string            `json:"error,omitempty"`
}

// candidate is an entity a rule can act on, with its trailing metrics
type candidate struct {
	entityType string
	id         string
	name       string
	state      string
	bid        *float64
	totals     store.MetricTotals
}

// EvaluateCondition reports whether the totals trip the condition. Ratio conditions are
// false while the ratio is undefined.
func EvaluateCondition(conditionType string, threshold float64, m store.MetricTotals) bool {
	switch conditionType {
	case ConditionACoSAbove:
		acos := m.ACoS()
		return acos != nil && *acos > threshold
	case ConditionACoSBelow:
		acos := m.ACoS()
		return acos != nil && *acos < threshold
	case ConditionROASAbove:
		roas := m.ROAS()
		return roas != nil && *roas > threshold
	case ConditionROASBelow:
		roas := m.ROAS()
		return roas != nil && *roas < threshold
	case ConditionClicksAbove:
		return float64(m.Clicks) > threshold
	case ConditionImpressionsAbove:
		return float64(m.Impressions) > threshold
	case ConditionOrdersBelow:
		return m.Clicks >= minClicksForOrders && float64(m.Orders) < threshold
	case ConditionSpendAbove:
		return m.Cost > threshold
	default:
		return false
	}
}

// RunAllRules evaluates every enabled rule in turn against the selected profile. A rule
// that errors is reported in its RunResult and does not stop the others.
func (p *RuleProcessor) RunAllRules(ctx context.Context) ([]RunResult, error) {
	profileID, err := p.profileID(ctx)
	if err != nil {
		return nil, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: profileID})

	var rules []store.AutomationRule
	for _, entity := range []string{audit.EntityKeyword, audit.EntityCampaign} {
		enabled, err := p.store.ListEnabledRules(ctx, entity)
		if err != nil {
			p.logger.Error(ctx, "failed to list enabled rules", err)
			return nil, err
		}
		rules = append(rules, enabled...)
	}

	runs := make([]RunResult, 0, len(rules))
	for _, rule := range rules {
		run, err := p.runRule(ctx, rule, profileID)
		if err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "rule_id", Value: rule.ID.String()}), "rule run failed", err)
			run.Error = err.Error()
		}
		runs = append(runs, run)
	}

	p.logger.Info(ctx, "rules run finished", observability.Field{Key: "rules", Value: len(rules)})
	return runs, nil
}

// RunRule evaluates a single rule now. A disabled rule does nothing and returns no results.
func (p *RuleProcessor) RunRule(ctx context.Context, id uuid.UUID) (RunResult, error) {
	rule, err := p.getRule(ctx, id)
	if err != nil {
		return RunResult{}, err
	}
	if !rule.Enabled {
		p.logger.Info(ctx, "rule is disabled, skipping run", observability.Field{Key: "rule_id", Value: rule.ID.String()})
		return RunResult{RuleID: rule.ID, RuleName: rule.Name, Results: []ExecutionResult{}}, nil
	}

	profileID, err := p.profileID(ctx)
	if err != nil {
		return RunResult{}, err
	}
	return p.runRule(ctx, rule, profileID)
}

func (p *RuleProcessor) profileID(ctx context.Context) (string, error) {
	profileID, err := p.profiles.ProfileID(ctx)
	if err != nil {
		return "", errors.Join(ErrNotConfigured, err)
	}
	return profileID, nil
}

func (p *RuleProcessor) runRule(ctx context.Context, rule store.AutomationRule, profileID string) (RunResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rule_id", Value: rule.ID.String()},
		observability.Field{Key: "rule_name", Value: rule.Name},
	)
	run := RunResult{RuleID: rule.ID, RuleName: rule.Name, Results: []ExecutionResult{}}

	candidates, err := p.candidates(ctx, rule.ConditionEntity, profileID)
	if err != nil {
		return run, err
	}

	now := p.now()
	cooldownStart := now.Add(-time.Duration(rule.CooldownHours) * time.Hour)

	for _, c := range candidates {
		if !EvaluateCondition(rule.ConditionType, rule.ConditionValue, c.totals) {
			continue
		}

		cooling, err := p.store.HasSuccessfulExecutionSince(ctx, rule.ID, c.id, cooldownStart)
		if err != nil {
			return run, err
		}
		if cooling {
			run.Results = append(run.Results, ExecutionResult{EntityID: c.id, EntityName: c.name, Result: store.RuleResultSkipped, Message: "In cooldown period"})
			continue
		}

		result := p.apply(ctx, rule, c)
		run.Results = append(run.Results, result)
		if result.Result == store.RuleResultSuccess {
			run.Successes++
		}
		p.recordExecution(ctx, rule, c, result)
	}

	if run.Successes > 0 {
		if err := p.store.RecordRuleExecutions(ctx, rule.ID, run.Successes, now); err != nil {
			return run, err
		}
	}

	p.logger.Info(ctx, "rule evaluated",
		observability.Field{Key: "candidates", Value: len(candidates)},
		observability.Field{Key: "matched", Value: len(run.Results)},
		observability.Field{Key: "successes", Value: run.Successes},
	)
	return run, nil
}

// candidates loads the profile's non-archived entities of the rule's scope with their
// trailing metrics
func (p *RuleProcessor) candidates(ctx context.Context, entity, profileID string) ([]candidate, error) {
	since := p.now().AddDate(0, 0, -lookbackDays).Format("20060102")

	switch entity {
	case audit.EntityKeyword:
		keywords, err := p.store.ListKeywordPerformance(ctx, store.KeywordFilter{ProfileID: profileID, Since: since})
		if err != nil {
			return nil, err
		}
		out := make([]candidate, 0, len(keywords))
		for _, k := range keywords {
			out = append(out, candidate{
				entityType: audit.EntityKeyword,
				id:         k.ID,
				name:       k.KeywordText,
				state:      k.State,
				bid:        k.Bid,
				totals:     k.MetricTotals,
			})
		}
		return out, nil
	case audit.EntityCampaign:
		campaigns, err := p.store.ListCampaignPerformance(ctx, store.CampaignFilter{ProfileID: profileID, Since: since})
		if err != nil {
			return nil, err
		}
		out := make([]candidate, 0, len(campaigns))
		for _, c := range campaigns {
			if c.State == store.StateArchived {
				continue
			}
			out = append(out, candidate{
				entityType: audit.EntityCampaign,
				id:         c.ID,
				name:       c.Name,
				state:      c.State,
				totals:     c.MetricTotals,
			})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported rule entity %q", ErrInvalidRule, entity)
	}
}

// apply runs the rule's action through the mutation pipeline, which validates and audits it
func (p *RuleProcessor) apply(ctx context.Context, rule store.AutomationRule, c candidate) ExecutionResult {
	out := ExecutionResult{EntityID: c.id, EntityName: c.name}
	actor := audit.RuleActor(rule.ID.String())
	reason := fmt.Sprintf("Rule \"%s\": %s triggered", rule.Name, rule.ConditionType)

	switch rule.ActionType {
	case ActionDecreaseBid, ActionIncreaseBid:
		if c.entityType != audit.EntityKeyword {
			out.Result, out.Message = store.RuleResultFailed, "Bid actions need a keyword rule"
			return out
		}
		current := 0.0
		if c.bid != nil {
			current = *c.bid
		}

		var newBid float64
		var verb string
		if rule.ActionType == ActionDecreaseBid {
			newBid = roundCents(current * (1 - percentOrDefault(rule.ActionValue, defaultDecreasePct)/100))
			verb = "decreased"
		} else {
			newBid = roundCents(current * (1 + percentOrDefault(rule.ActionValue, defaultIncreasePct)/100))
			verb = "increased"
		}

		res, err := p.mutator.ChangeBid(ctx, actor, mutation.ChangeBidRequest{
			EntityType: audit.EntityKeyword,
			EntityID:   c.id,
			Bid:        newBid,
			Reason:     reason,
		})
		if err != nil {
			out.Result, out.Message = store.RuleResultFailed, failureMessage(res, err)
			return out
		}
		out.Result = store.RuleResultSuccess
		out.Message = fmt.Sprintf("Bid %s from $%.2f to $%.2f", verb, current, newBid)
		return out

	case ActionPause, ActionEnable:
		target, done, already := store.StatePaused, "Paused", "Already paused"
		if rule.ActionType == ActionEnable {
			target, done, already = store.StateEnabled, "Enabled", "Already enabled"
		}
		if c.state == target {
			out.Result, out.Message = store.RuleResultSkipped, already
			return out
		}

		res, err := p.mutator.ChangeState(ctx, actor, mutation.ChangeStateRequest{
			EntityType: c.entityType,
			EntityID:   c.id,
			State:      target,
			Reason:     reason,
		})
		if err != nil {
			out.Result, out.Message = store.RuleResultFailed, failureMessage(res, err)
			return out
		}
		out.Result, out.Message = store.RuleResultSuccess, done
		return out

	default:
		out.Result = store.RuleResultFailed
		out.Message = fmt.Sprintf("Unknown action type: %s", rule.ActionType)
		return out
	}
}

func (p *RuleProcessor) recordExecution(ctx context.Context, rule store.AutomationRule, c candidate, result ExecutionResult) {
	name := c.name
	msg := result.Message
	_, err := p.store.CreateRuleExecution(ctx, store.CreateRuleExecutionParams{
		RuleID:     rule.ID,
		EntityType: c.entityType,
		EntityID:   c.id,
		EntityName: &name,
		Result:     result.Result,
		Message:    &msg,
		ExecutedAt: p.now(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record rule execution", err)
	}
}

func failureMessage(res mutation.Result, err error) string {
	if res.Error != "" {
		return res.Error
	}
	return err.Error()
}

func percentOrDefault(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
