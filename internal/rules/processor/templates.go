package processor

import (
	"adsync/internal/audit"
	"context"
	"fmt"
	"strconv"
)

// Template is a preset rule a user can create in one step
type Template struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Rule        CreateRuleParams `json:"rule"`
}

func ptr[T any](v T) *T {
	return &v
}

var templates = []Template{
	{
		ID:          "high-acos-reducer",
		Name:        "High ACoS Reducer",
		Description: "Decrease bid by 10% when ACoS exceeds 50%",
		Rule: CreateRuleParams{
			Name:            "High ACoS Reducer",
			Description:     ptr("Automatically reduce bids on keywords with ACoS above 50%"),
			ConditionType:   ConditionACoSAbove,
			ConditionValue:  50,
			ConditionEntity: audit.EntityKeyword,
			ActionType:      ActionDecreaseBid,
			ActionValue:     ptr(10.0),
			CooldownHours:   ptr(24),
		},
	},
	{
		ID:          "low-performance-pauser",
		Name:        "Low Performance Pauser",
		Description: "Pause keywords with 100+ clicks but no orders",
		Rule: CreateRuleParams{
			Name:            "Low Performance Pauser",
			Description:     ptr("Pause keywords that get clicks but never convert"),
			ConditionType:   ConditionOrdersBelow,
			ConditionValue:  1,
			ConditionEntity: audit.EntityKeyword,
			ActionType:      ActionPause,
			CooldownHours:   ptr(168),
		},
	},
	{
		ID:          "winner-booster",
		Name:        "Winner Booster",
		Description: "Increase bid by 5% when ROAS exceeds 3x",
		Rule: CreateRuleParams{
			Name:            "Winner Booster",
			Description:     ptr("Automatically boost bids on high-performing keywords"),
			ConditionType:   ConditionROASAbove,
			ConditionValue:  3,
			ConditionEntity: audit.EntityKeyword,
			ActionType:      ActionIncreaseBid,
			ActionValue:     ptr(5.0),
			CooldownHours:   ptr(48),
		},
	},
}

// Templates lists the preset rules
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// CreateFromTemplate creates the preset rule with the given template id
func (p *RuleProcessor) CreateFromTemplate(ctx context.Context, actor audit.Actor, templateID string) (RuleView, error) {
	for _, t := range templates {
		if t.ID == templateID {
			return p.CreateRule(ctx, actor, t.Rule)
		}
	}
	return RuleView{}, ErrTemplateNotFound
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DescribeCondition renders a condition the way the dashboard shows it
func DescribeCondition(conditionType string, value float64) string {
	switch conditionType {
	case ConditionACoSAbove:
		return fmt.Sprintf("ACoS > %s%%", num(value))
	case ConditionACoSBelow:
		return fmt.Sprintf("ACoS < %s%%", num(value))
	case ConditionROASAbove:
		return fmt.Sprintf("ROAS > %s", num(value))
	case ConditionROASBelow:
		return fmt.Sprintf("ROAS < %s", num(value))
	case ConditionClicksAbove:
		return fmt.Sprintf("Clicks > %s", num(value))
	case ConditionImpressionsAbove:
		return fmt.Sprintf("Impressions > %s", num(value))
	case ConditionOrdersBelow:
		return fmt.Sprintf("Orders < %s", num(value))
	case ConditionSpendAbove:
		return fmt.Sprintf("Spend > $%s", num(value))
	default:
		return conditionType
	}
}

// DescribeAction renders an action, filling in the default percentage when unset
func DescribeAction(actionType string, value *float64) string {
	switch actionType {
	case ActionDecreaseBid:
		return fmt.Sprintf("Decrease bid by %s%%", num(percentOrDefault(value, defaultDecreasePct)))
	case ActionIncreaseBid:
		return fmt.Sprintf("Increase bid by %s%%", num(percentOrDefault(value, defaultIncreasePct)))
	case ActionPause:
		return "Pause"
	case ActionEnable:
		return "Enable"
	default:
		return actionType
	}
}
