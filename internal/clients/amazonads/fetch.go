package amazonads

import (
	"adsync/internal/observability"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

const listPageSize = 100

type wireCampaign struct {
	CampaignID    flexID          `json:"campaignId"`
	Name          string          `json:"name"`
	State         string          `json:"state"`
	Budget        json.RawMessage `json:"budget"`
	BudgetType    string          `json:"budgetType"`
	TargetingType string          `json:"targetingType"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	BrandEntityID string          `json:"brandEntityId"`
	Tactic        string          `json:"tactic"`
	CostType      string          `json:"costType"`
}

type wireAdGroup struct {
	AdGroupID  flexID   `json:"adGroupId"`
	CampaignID flexID   `json:"campaignId"`
	Name       string   `json:"name"`
	State      string   `json:"state"`
	DefaultBid *float64 `json:"defaultBid"`
	Bid        *float64 `json:"bid"`
}

type wireKeyword struct {
	KeywordID                 flexID   `json:"keywordId"`
	CampaignNegativeKeywordID flexID   `json:"campaignNegativeKeywordId"`
	AdGroupID                 flexID   `json:"adGroupId"`
	CampaignID                flexID   `json:"campaignId"`
	KeywordText               string   `json:"keywordText"`
	MatchType                 string   `json:"matchType"`
	State                     string   `json:"state"`
	Bid                       *float64 `json:"bid"`
}

type wireTarget struct {
	TargetID       flexID          `json:"targetId"`
	AdGroupID      flexID          `json:"adGroupId"`
	CampaignID     flexID          `json:"campaignId"`
	ExpressionType string          `json:"expressionType"`
	Expression     json.RawMessage `json:"expression"`
	Expressions    json.RawMessage `json:"expressions"`
	State          string          `json:"state"`
	Bid            *float64        `json:"bid"`
}

// parseBudget accepts SP's nested {budget, budgetType} object and the flat number SB and SD send
func parseBudget(raw json.RawMessage, flatType string) (*float64, string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, flatType, nil
	}
	if raw[0] == '{' {
		var nested struct {
			Budget     *float64 `json:"budget"`
			BudgetType string   `json:"budgetType"`
		}
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, "", err
		}
		return nested.Budget, nested.BudgetType, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, "", err
	}
	return &v, flatType, nil
}

// list pages through res until the continuation token runs out
func (c *Client) list(ctx context.Context, res resource, filter map[string]interface{}, handle func(items json.RawMessage) error) error {
	nextToken := ""
	for {
		body := map[string]interface{}{
			"stateFilter": map[string]interface{}{"include": []string{"ENABLED", "PAUSED"}},
			"maxResults":  listPageSize,
		}
		for k, v := range filter {
			body[k] = v
		}
		if nextToken != "" {
			body["nextToken"] = nextToken
		}

		var page map[string]json.RawMessage
		err := c.do(ctx, apiRequest{method: http.MethodPost, path: res.Path + "/list", mediaType: res.MediaType, body: body}, &page)
		if err != nil {
			return err
		}

		if items, ok := page[res.ItemsKey]; ok && len(items) > 0 && string(items) != "null" {
			if err := handle(items); err != nil {
				return fmt.Errorf("failed to decode %s: %w", res.ItemsKey, err)
			}
		}

		nextToken = ""
		if raw, ok := page["nextToken"]; ok && string(raw) != "null" {
			if err := json.Unmarshal(raw, &nextToken); err != nil {
				return fmt.Errorf("failed to decode nextToken: %w", err)
			}
		}
		if nextToken == "" {
			return nil
		}
	}
}

func idFilter(key, id string) map[string]interface{} {
	return map[string]interface{}{key: map[string]interface{}{"include": []string{id}}}
}

// FetchCampaigns lists every enabled or paused campaign of type t
func (c *Client) FetchCampaigns(ctx context.Context, t CampaignType) ([]Campaign, error) {
	res, err := route(t, KindCampaign)
	if err != nil {
		return nil, err
	}

	var campaigns []Campaign
	err = c.list(ctx, res, nil, func(items json.RawMessage) error {
		var wire []wireCampaign
		if err := json.Unmarshal(items, &wire); err != nil {
			return err
		}
		for _, w := range wire {
			budget, budgetType, err := parseBudget(w.Budget, w.BudgetType)
			if err != nil {
				return fmt.Errorf("campaign %s budget: %w", w.CampaignID, err)
			}
			campaigns = append(campaigns, Campaign{
				ID:            w.CampaignID.String(),
				Type:          t,
				Name:          w.Name,
				State:         localState(w.State),
				Budget:        budget,
				BudgetType:    budgetType,
				TargetingType: w.TargetingType,
				StartDate:     w.StartDate,
				EndDate:       w.EndDate,
				BrandEntityID: w.BrandEntityID,
				Tactic:        w.Tactic,
				CostType:      w.CostType,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s campaigns: %w", t, err)
	}
	return campaigns, nil
}

// FetchAllCampaigns fetches every campaign type concurrently. A type that fails is
// logged and left out; its error is joined into the returned error alongside the
// campaigns that did arrive.
func (c *Client) FetchAllCampaigns(ctx context.Context) ([]Campaign, error) {
	var (
		mu   sync.Mutex
		all  []Campaign
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range CampaignTypes {
		t := t
		g.Go(func() error {
			campaigns, err := c.FetchCampaigns(gctx, t)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn(ctx, "campaign fetch failed",
					observability.Field{Key: "campaign_type", Value: string(t)},
					observability.Field{Key: "error", Value: err.Error()},
				)
				errs = append(errs, err)
				return nil
			}
			all = append(all, campaigns...)
			return nil
		})
	}
	_ = g.Wait()

	return all, errors.Join(errs...)
}

// FetchAdGroups lists the ad groups of one campaign
func (c *Client) FetchAdGroups(ctx context.Context, t CampaignType, campaignID string) ([]AdGroup, error) {
	res, err := route(t, KindAdGroup)
	if err != nil {
		return nil, err
	}

	var adGroups []AdGroup
	err = c.list(ctx, res, idFilter("campaignIdFilter", campaignID), func(items json.RawMessage) error {
		var wire []wireAdGroup
		if err := json.Unmarshal(items, &wire); err != nil {
			return err
		}
		for _, w := range wire {
			bid := w.DefaultBid
			if bid == nil {
				bid = w.Bid
			}
			parent := w.CampaignID.String()
			if parent == "" {
				parent = campaignID
			}
			adGroups = append(adGroups, AdGroup{
				ID:           w.AdGroupID.String(),
				CampaignID:   parent,
				CampaignType: t,
				Name:         w.Name,
				State:        localState(w.State),
				DefaultBid:   bid,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s ad groups for campaign %s: %w", t, campaignID, err)
	}
	return adGroups, nil
}

// FetchKeywords lists the keywords of one ad group
func (c *Client) FetchKeywords(ctx context.Context, t CampaignType, adGroupID string) ([]Keyword, error) {
	res, err := route(t, KindKeyword)
	if err != nil {
		return nil, err
	}

	var keywords []Keyword
	err = c.list(ctx, res, idFilter("adGroupIdFilter", adGroupID), func(items json.RawMessage) error {
		var wire []wireKeyword
		if err := json.Unmarshal(items, &wire); err != nil {
			return err
		}
		for _, w := range wire {
			keywords = append(keywords, Keyword{
				ID:           w.KeywordID.String(),
				AdGroupID:    w.AdGroupID.String(),
				CampaignID:   w.CampaignID.String(),
				CampaignType: t,
				KeywordText:  w.KeywordText,
				MatchType:    localMatchType(w.MatchType),
				State:        localState(w.State),
				Bid:          w.Bid,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s keywords for ad group %s: %w", t, adGroupID, err)
	}
	return keywords, nil
}

// FetchNegativeKeywords lists the ad-group level negative keywords of one ad group
func (c *Client) FetchNegativeKeywords(ctx context.Context, t CampaignType, adGroupID string) ([]NegativeKeyword, error) {
	negatives, err := c.fetchNegatives(ctx, t, KindNegativeKeyword, idFilter("adGroupIdFilter", adGroupID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s negative keywords for ad group %s: %w", t, adGroupID, err)
	}
	return negatives, nil
}

// FetchCampaignNegativeKeywords lists the campaign-level negative keywords of one campaign
func (c *Client) FetchCampaignNegativeKeywords(ctx context.Context, t CampaignType, campaignID string) ([]NegativeKeyword, error) {
	negatives, err := c.fetchNegatives(ctx, t, KindCampaignNegativeKeyword, idFilter("campaignIdFilter", campaignID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s campaign negative keywords for campaign %s: %w", t, campaignID, err)
	}
	for i := range negatives {
		negatives[i].AdGroupID = ""
		if negatives[i].CampaignID == "" {
			negatives[i].CampaignID = campaignID
		}
	}
	return negatives, nil
}

func (c *Client) fetchNegatives(ctx context.Context, t CampaignType, kind EntityKind, filter map[string]interface{}) ([]NegativeKeyword, error) {
	res, err := route(t, kind)
	if err != nil {
		return nil, err
	}

	var negatives []NegativeKeyword
	err = c.list(ctx, res, filter, func(items json.RawMessage) error {
		var wire []wireKeyword
		if err := json.Unmarshal(items, &wire); err != nil {
			return err
		}
		for _, w := range wire {
			id := w.KeywordID.String()
			if id == "" {
				id = w.CampaignNegativeKeywordID.String()
			}
			negatives = append(negatives, NegativeKeyword{
				ID:           id,
				CampaignID:   w.CampaignID.String(),
				AdGroupID:    w.AdGroupID.String(),
				CampaignType: t,
				KeywordText:  w.KeywordText,
				MatchType:    localMatchType(w.MatchType),
				State:        localState(w.State),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return negatives, nil
}

// FetchTargets lists the product and audience targets of one ad group
func (c *Client) FetchTargets(ctx context.Context, t CampaignType, adGroupID string) ([]Target, error) {
	res, err := route(t, KindTarget)
	if err != nil {
		return nil, err
	}

	var targets []Target
	err = c.list(ctx, res, idFilter("adGroupIdFilter", adGroupID), func(items json.RawMessage) error {
		var wire []wireTarget
		if err := json.Unmarshal(items, &wire); err != nil {
			return err
		}
		for _, w := range wire {
			expression := w.Expression
			if len(expression) == 0 || string(expression) == "null" {
				expression = w.Expressions
			}
			var predicates []TargetExpression
			if len(expression) > 0 && string(expression) != "null" {
				if err := json.Unmarshal(expression, &predicates); err != nil {
					return fmt.Errorf("target %s expression: %w", w.TargetID, err)
				}
			} else {
				expression = json.RawMessage("[]")
			}
			targets = append(targets, Target{
				ID:             w.TargetID.String(),
				AdGroupID:      w.AdGroupID.String(),
				CampaignID:     w.CampaignID.String(),
				CampaignType:   t,
				TargetType:     TargetTypeFor(predicates),
				ExpressionType: w.ExpressionType,
				Expression:     expression,
				State:          localState(w.State),
				Bid:            w.Bid,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s targets for ad group %s: %w", t, adGroupID, err)
	}
	return targets, nil
}
