package amazonads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type CreateCampaignInput struct {
	Type            CampaignType
	Name            string
	Budget          float64
	StartDate       string
	EndDate         string
	TargetingType   string
	BiddingStrategy string
	BrandEntityID   string
	Tactic          string
	CostType        string
}

type CreateAdGroupInput struct {
	CampaignID      string
	Name            string
	DefaultBid      float64
	BidOptimization string
}

type CreateKeywordInput struct {
	CampaignID  string
	AdGroupID   string
	KeywordText string
	MatchType   string
	Bid         *float64
}

// CreateNegativeKeywordInput targets the whole campaign when AdGroupID is empty
type CreateNegativeKeywordInput struct {
	CampaignID  string
	AdGroupID   string
	KeywordText string
	MatchType   string
}

type CreateTargetInput struct {
	CampaignID string
	AdGroupID  string
	Expression []TargetExpression
	Bid        *float64
}

// mutate sends items to res and returns the remote id of each item, in order.
// Items the API marked with a non-SUCCESS code produce an *ItemError.
func (c *Client) mutate(ctx context.Context, method string, res resource, items []map[string]interface{}) ([]string, error) {
	var resp map[string]json.RawMessage
	err := c.do(ctx, apiRequest{
		method:    method,
		path:      res.Path,
		mediaType: res.MediaType,
		body:      map[string]interface{}{res.ItemsKey: items},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return parseItemResults(resp, res)
}

// parseItemResults reads the per-item results under res.ItemsKey. The API answers either
// with a list of items carrying a code, or with a multi-status {success, error} object
// whose entries carry their request index. Any other shape has no ids and no failures.
func parseItemResults(resp map[string]json.RawMessage, res resource) ([]string, error) {
	raw, ok := resp[res.ItemsKey]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	switch firstByte(raw) {
	case '[':
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode %s results: %w", res.ItemsKey, err)
		}
		return listResults(items, res)
	case '{':
		var envelope multiStatus
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode %s results: %w", res.ItemsKey, err)
		}
		return envelope.results(res)
	default:
		return nil, nil
	}
}

func listResults(items []map[string]json.RawMessage, res resource) ([]string, error) {
	ids := make([]string, 0, len(items))
	var failures []ItemFailure
	for i, item := range items {
		code := rawString(item["code"])
		if code != "" && code != "SUCCESS" {
			failures = append(failures, ItemFailure{Index: i, Code: code, Details: rawString(item["details"])})
			ids = append(ids, "")
			continue
		}
		ids = append(ids, itemID(item, res))
	}

	if len(failures) > 0 {
		return ids, &ItemError{Failures: failures}
	}
	return ids, nil
}

// multiStatus is the {success, error} results object
type multiStatus struct {
	Success []map[string]json.RawMessage `json:"success"`
	Error   []map[string]json.RawMessage `json:"error"`
}

func (m multiStatus) results(res resource) ([]string, error) {
	ids := make([]string, len(m.Success)+len(m.Error))
	place := func(item map[string]json.RawMessage, fallback int) int {
		var idx int
		if err := json.Unmarshal(item["index"], &idx); err != nil || idx < 0 {
			idx = fallback
		}
		for idx >= len(ids) {
			ids = append(ids, "")
		}
		return idx
	}

	for i, item := range m.Success {
		idx := place(item, i)
		ids[idx] = itemID(item, res)
	}

	var failures []ItemFailure
	for i, item := range m.Error {
		idx := place(item, len(m.Success)+i)
		failures = append(failures, multiStatusFailure(idx, item))
	}

	if len(failures) > 0 {
		return ids, &ItemError{Failures: failures}
	}
	return ids, nil
}

// multiStatusFailure reads the first entry of an error item's errors list, e.g.
// {"errorType":"entityNotFound","errorValue":{"entityNotFoundError":{"message":"..."}}}
func multiStatusFailure(index int, item map[string]json.RawMessage) ItemFailure {
	failure := ItemFailure{Index: index, Code: "ERROR"}

	var errs []struct {
		ErrorType  string                     `json:"errorType"`
		ErrorValue map[string]json.RawMessage `json:"errorValue"`
	}
	if err := json.Unmarshal(item["errors"], &errs); err != nil || len(errs) == 0 {
		return failure
	}

	if errs[0].ErrorType != "" {
		failure.Code = errs[0].ErrorType
	}
	for _, raw := range errs[0].ErrorValue {
		var detail map[string]json.RawMessage
		if err := json.Unmarshal(raw, &detail); err != nil {
			continue
		}
		if msg := rawString(detail["message"]); msg != "" {
			failure.Details = msg
			break
		}
	}
	return failure
}

func itemID(item map[string]json.RawMessage, res resource) string {
	id := rawString(item[res.IDField])
	if id == "" {
		id = rawString(item["campaignNegativeKeywordId"])
	}
	return id
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v flexID
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v.String()
}

func firstID(ids []string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if len(ids) == 0 || ids[0] == "" {
		return "", ErrEmptyResponse
	}
	return ids[0], nil
}

func (c *Client) updateOne(ctx context.Context, t CampaignType, kind EntityKind, item map[string]interface{}) error {
	res, err := route(t, kind)
	if err != nil {
		return err
	}
	_, err = c.mutate(ctx, http.MethodPut, res, []map[string]interface{}{item})
	return err
}

// UpdateKeywordBid sets the bid of one keyword
func (c *Client) UpdateKeywordBid(ctx context.Context, t CampaignType, keywordID string, bid float64) error {
	return c.updateOne(ctx, t, KindKeyword, map[string]interface{}{"keywordId": keywordID, "bid": bid})
}

// UpdateTargetBid sets the bid of one target
func (c *Client) UpdateTargetBid(ctx context.Context, t CampaignType, targetID string, bid float64) error {
	return c.updateOne(ctx, t, KindTarget, map[string]interface{}{"targetId": targetID, "bid": bid})
}

// UpdateCampaignBudget sets a campaign's daily budget
func (c *Client) UpdateCampaignBudget(ctx context.Context, t CampaignType, campaignID string, budget float64) error {
	caps, err := capabilitiesFor(t)
	if err != nil {
		return err
	}
	item := map[string]interface{}{"campaignId": campaignID, "budget": budget}
	if caps.NestedBudget {
		item["budget"] = map[string]interface{}{"budget": budget, "budgetType": "DAILY"}
	}
	return c.updateOne(ctx, t, KindCampaign, item)
}

// UpdateState enables, pauses or archives one entity
func (c *Client) UpdateState(ctx context.Context, t CampaignType, kind EntityKind, id, state string) error {
	res, err := route(t, kind)
	if err != nil {
		return err
	}
	switch strings.ToLower(state) {
	case "enabled", "paused", "archived":
	default:
		return fmt.Errorf("%w: unknown state %q", ErrInvalidInput, state)
	}
	_, err = c.mutate(ctx, http.MethodPut, res, []map[string]interface{}{{res.IDField: id, "state": wireState(state)}})
	return err
}

// Archive is a state change to ARCHIVED; the API has no hard delete
func (c *Client) Archive(ctx context.Context, t CampaignType, kind EntityKind, id string) error {
	return c.UpdateState(ctx, t, kind, id, "archived")
}

// CreateCampaign creates a campaign and returns its remote id
func (c *Client) CreateCampaign(ctx context.Context, in CreateCampaignInput) (string, error) {
	caps, err := capabilitiesFor(in.Type)
	if err != nil {
		return "", err
	}
	if in.Name == "" || in.Budget <= 0 {
		return "", fmt.Errorf("%w: campaign needs a name and a positive budget", ErrInvalidInput)
	}
	body, err := caps.campaignBody(in.WithDefaults())
	if err != nil {
		return "", err
	}
	return firstID(c.mutate(ctx, http.MethodPost, caps.Resources[KindCampaign], []map[string]interface{}{body}))
}

// WithDefaults fills the type-specific defaults Amazon would otherwise require
func (in CreateCampaignInput) WithDefaults() CreateCampaignInput {
	switch in.Type {
	case SponsoredProducts:
		if in.TargetingType == "" {
			in.TargetingType = "MANUAL"
		}
		if in.BiddingStrategy == "" {
			in.BiddingStrategy = "LEGACY_FOR_SALES"
		}
	case SponsoredDisplay:
		if in.Tactic == "" {
			in.Tactic = "T00020"
		}
		if in.CostType == "" {
			in.CostType = "cpc"
		}
	}
	return in
}

// CreateAdGroup creates an ad group under an existing campaign
func (c *Client) CreateAdGroup(ctx context.Context, t CampaignType, in CreateAdGroupInput) (string, error) {
	caps, err := capabilitiesFor(t)
	if err != nil {
		return "", err
	}
	if in.CampaignID == "" || in.Name == "" {
		return "", fmt.Errorf("%w: ad group needs a campaign and a name", ErrInvalidInput)
	}
	return firstID(c.mutate(ctx, http.MethodPost, caps.Resources[KindAdGroup], []map[string]interface{}{caps.adGroupBody(in)}))
}

// CreateKeywords creates keywords in one batch and returns their ids in input order
func (c *Client) CreateKeywords(ctx context.Context, t CampaignType, in []CreateKeywordInput) ([]string, error) {
	res, err := route(t, KindKeyword)
	if err != nil {
		return nil, err
	}
	if len(in) == 0 {
		return nil, nil
	}
	items := make([]map[string]interface{}, 0, len(in))
	for _, k := range in {
		item := map[string]interface{}{
			"campaignId":  k.CampaignID,
			"adGroupId":   k.AdGroupID,
			"keywordText": k.KeywordText,
			"matchType":   wireMatchType(k.MatchType),
			"state":       "ENABLED",
		}
		if k.Bid != nil {
			item["bid"] = *k.Bid
		}
		items = append(items, item)
	}
	return c.mutate(ctx, http.MethodPost, res, items)
}

// CreateNegativeKeyword creates a campaign-level or ad-group level negative keyword
func (c *Client) CreateNegativeKeyword(ctx context.Context, t CampaignType, in CreateNegativeKeywordInput) (string, error) {
	kind := KindNegativeKeyword
	item := map[string]interface{}{
		"campaignId":  in.CampaignID,
		"keywordText": in.KeywordText,
		"matchType":   wireMatchType(in.MatchType),
		"state":       "ENABLED",
	}
	if in.AdGroupID == "" {
		kind = KindCampaignNegativeKeyword
	} else {
		item["adGroupId"] = in.AdGroupID
	}
	res, err := route(t, kind)
	if err != nil {
		return "", err
	}
	return firstID(c.mutate(ctx, http.MethodPost, res, []map[string]interface{}{item}))
}

// CreateTargets creates targets in one batch and returns their ids in input order
func (c *Client) CreateTargets(ctx context.Context, t CampaignType, in []CreateTargetInput) ([]string, error) {
	caps, err := capabilitiesFor(t)
	if err != nil {
		return nil, err
	}
	res, ok := caps.Resources[KindTarget]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", ErrUnsupportedOperation, t, KindTarget)
	}
	if len(in) == 0 {
		return nil, nil
	}
	items := make([]map[string]interface{}, 0, len(in))
	for _, target := range in {
		if len(target.Expression) == 0 {
			return nil, fmt.Errorf("%w: target needs at least one expression", ErrInvalidInput)
		}
		item := caps.targetBody(target)
		if target.Bid == nil {
			delete(item, "bid")
		}
		items = append(items, item)
	}
	return c.mutate(ctx, http.MethodPost, res, items)
}
