package amazonads

import (
	"adsync/internal/observability"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const reportMediaType = "application/vnd.createasyncreportrequest.v3+json"

// ReportKind is the entity a performance report is grouped by
type ReportKind string

const (
	ReportCampaigns ReportKind = "campaigns"
	ReportKeywords  ReportKind = "keywords"
	ReportTargets   ReportKind = "targets"
)

var metricColumns = []string{"impressions", "clicks", "cost", "purchases30d", "sales30d"}

type reportShape struct {
	idColumn string
	columns  []string
	groupBy  []string
}

var reportShapes = map[ReportKind]reportShape{
	ReportCampaigns: {
		idColumn: "campaignId",
		columns:  append([]string{"campaignId", "date"}, metricColumns...),
		groupBy:  []string{"campaign"},
	},
	ReportKeywords: {
		idColumn: "keywordId",
		columns:  append([]string{"keywordId", "adGroupId", "campaignId", "date"}, metricColumns...),
		groupBy:  []string{"campaign", "keyword"},
	},
	ReportTargets: {
		idColumn: "targetId",
		columns:  append([]string{"targetId", "adGroupId", "campaignId", "date"}, metricColumns...),
		groupBy:  []string{"campaign", "targeting"},
	},
}

// ReportPhase is where an async report job stands
type ReportPhase int

const (
	ReportSubmitted ReportPhase = iota
	ReportPolling
	ReportCompleted
	ReportFailed
	ReportTimedOut
)

func (p ReportPhase) String() string {
	switch p {
	case ReportSubmitted:
		return "submitted"
	case ReportPolling:
		return "polling"
	case ReportCompleted:
		return "completed"
	case ReportFailed:
		return "failed"
	case ReportTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Terminal reports whether no more polling will happen
func (p ReportPhase) Terminal() bool {
	return p == ReportCompleted || p == ReportFailed || p == ReportTimedOut
}

// ReportPollPolicy controls the growing poll interval and the overall deadline
type ReportPollPolicy struct {
	Initial time.Duration
	Factor  float64
	Max     time.Duration
	Timeout time.Duration
}

// DefaultReportPollPolicy polls after 5s, growing by 1.2x up to 15s, for at most 10 minutes
func DefaultReportPollPolicy() ReportPollPolicy {
	return ReportPollPolicy{
		Initial: 5 * time.Second,
		Factor:  1.2,
		Max:     15 * time.Second,
		Timeout: 10 * time.Minute,
	}
}

// ReportStatus is the remote view of a report job
type ReportStatus struct {
	ReportID      string `json:"reportId"`
	Status        string `json:"status"`
	StatusDetails string `json:"statusDetails"`
	URL           string `json:"url"`
}

// ReportJob tracks one async report from submission to a terminal phase
type ReportJob struct {
	ID        string
	Phase     ReportPhase
	StartedAt time.Time
	URL       string
	Detail    string

	interval time.Duration
	policy   ReportPollPolicy
}

func NewReportJob(id string, startedAt time.Time, policy ReportPollPolicy) *ReportJob {
	return &ReportJob{
		ID:        id,
		Phase:     ReportSubmitted,
		StartedAt: startedAt,
		interval:  policy.Initial,
		policy:    policy,
	}
}

// Observe folds one status poll into the job. It returns how long to wait before the
// next poll, or zero once the job is terminal.
func (j *ReportJob) Observe(status ReportStatus, now time.Time) time.Duration {
	if j.Phase.Terminal() {
		return 0
	}

	switch strings.ToUpper(status.Status) {
	case "COMPLETED":
		if status.URL != "" {
			j.Phase = ReportCompleted
			j.URL = status.URL
			return 0
		}
	case "FAILED", "CANCELLED":
		j.Phase = ReportFailed
		j.Detail = status.StatusDetails
		return 0
	}

	if now.Sub(j.StartedAt) >= j.policy.Timeout {
		j.Phase = ReportTimedOut
		return 0
	}

	j.Phase = ReportPolling
	wait := j.interval
	next := time.Duration(float64(j.interval) * j.policy.Factor)
	if next > j.policy.Max {
		next = j.policy.Max
	}
	j.interval = next
	return wait
}

// FirstWait is the delay between submission and the first status poll
func (j *ReportJob) FirstWait() time.Duration {
	return j.policy.Initial
}

type reportRow struct {
	CampaignID   flexID  `json:"campaignId"`
	KeywordID    flexID  `json:"keywordId"`
	TargetID     flexID  `json:"targetId"`
	Date         string  `json:"date"`
	Impressions  float64 `json:"impressions"`
	Clicks       float64 `json:"clicks"`
	Cost         float64 `json:"cost"`
	Purchases30d float64 `json:"purchases30d"`
	Sales30d     float64 `json:"sales30d"`
}

func (r reportRow) ownerID(kind ReportKind) string {
	switch kind {
	case ReportKeywords:
		return r.KeywordID.String()
	case ReportTargets:
		return r.TargetID.String()
	}
	return r.CampaignID.String()
}

// ReportDateRange returns the window of days back from today, ending yesterday
func ReportDateRange(now time.Time, days int) (start, end time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, -1)
}

func (c *Client) createReport(ctx context.Context, t CampaignType, kind ReportKind, start, end time.Time) (string, error) {
	caps, err := capabilitiesFor(t)
	if err != nil {
		return "", err
	}
	reportType, ok := caps.ReportTypes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s has no %s report", ErrUnsupportedOperation, t, kind)
	}
	shape := reportShapes[kind]

	body := map[string]interface{}{
		"name":      fmt.Sprintf("%s_%d", reportType, c.now().UnixMilli()),
		"startDate": start.Format("2006-01-02"),
		"endDate":   end.Format("2006-01-02"),
		"configuration": map[string]interface{}{
			"adProduct":    caps.AdProduct,
			"groupBy":      shape.groupBy,
			"columns":      shape.columns,
			"reportTypeId": reportType,
			"timeUnit":     "DAILY",
			"format":       "GZIP_JSON",
		},
	}

	var resp struct {
		ReportID flexID `json:"reportId"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: "/reporting/reports", mediaType: reportMediaType, body: body}, &resp); err != nil {
		return "", fmt.Errorf("failed to create %s report: %w", reportType, err)
	}
	if resp.ReportID == "" {
		return "", fmt.Errorf("failed to create %s report: %w", reportType, ErrEmptyResponse)
	}
	return resp.ReportID.String(), nil
}

func (c *Client) reportStatus(ctx context.Context, reportID string) (ReportStatus, error) {
	var status ReportStatus
	err := c.do(ctx, apiRequest{method: http.MethodGet, path: "/reporting/reports/" + reportID, mediaType: reportMediaType}, &status)
	if err != nil {
		return ReportStatus{}, fmt.Errorf("failed to get report %s status: %w", reportID, err)
	}
	return status, nil
}

// RunReport submits a report, polls it to completion and downloads its rows. A report
// that fails remotely or outlives the poll timeout yields no rows and no error.
func (c *Client) RunReport(ctx context.Context, t CampaignType, kind ReportKind, start, end time.Time) ([]MetricRow, error) {
	reportID, err := c.createReport(ctx, t, kind, start, end)
	if err != nil {
		return nil, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "report_id", Value: reportID},
		observability.Field{Key: "campaign_type", Value: string(t)},
		observability.Field{Key: "report_kind", Value: string(kind)},
	)

	job := NewReportJob(reportID, c.now(), c.reportPoll)
	wait := job.FirstWait()
	for !job.Phase.Terminal() {
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
		status, err := c.reportStatus(ctx, reportID)
		if err != nil {
			return nil, err
		}
		wait = job.Observe(status, c.now())
	}

	switch job.Phase {
	case ReportFailed:
		c.logger.Warn(ctx, "report failed", observability.Field{Key: "details", Value: job.Detail})
		return nil, nil
	case ReportTimedOut:
		c.logger.Warn(ctx, "report timed out", observability.Field{Key: "timeout", Value: c.reportPoll.Timeout.String()})
		return nil, nil
	}

	rows, err := c.downloadReport(ctx, job.URL, kind)
	if err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "report downloaded", observability.Field{Key: "rows", Value: len(rows)})
	return rows, nil
}

// downloadReport fetches a pre-signed report URL. It carries no API headers.
func (c *Client) downloadReport(ctx context.Context, url string, kind ReportKind) ([]MetricRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to download report: %w", &APIError{StatusCode: resp.StatusCode, Body: string(body)})
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to open report archive: %w", err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress report: %w", err)
	}
	return parseReportRows(data, kind)
}

// parseReportRows reads a JSON array, falling back to one JSON object per line
func parseReportRows(data []byte, kind ReportKind) ([]MetricRow, error) {
	var raw []reportRow
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = raw[:0]
		scanner := bufio.NewScanner(bytes.NewReader(data))
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var row reportRow
			if err := json.Unmarshal(line, &row); err != nil {
				return nil, fmt.Errorf("failed to parse report line: %w", err)
			}
			raw = append(raw, row)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}
	}

	rows := make([]MetricRow, 0, len(raw))
	for _, r := range raw {
		owner := r.ownerID(kind)
		if owner == "" || r.Date == "" {
			continue
		}
		rows = append(rows, MetricRow{
			OwnerID:     owner,
			Date:        strings.ReplaceAll(r.Date, "-", ""),
			Impressions: int64(math.Round(r.Impressions)),
			Clicks:      int64(math.Round(r.Clicks)),
			Cost:        r.Cost,
			Orders:      int64(math.Round(r.Purchases30d)),
			Sales:       r.Sales30d,
		})
	}
	return rows, nil
}

// FetchMetrics runs the report of the given kind for every campaign type that has one
// and merges the rows. Reports that error are logged and joined into the returned error.
func (c *Client) FetchMetrics(ctx context.Context, kind ReportKind, start, end time.Time) ([]MetricRow, error) {
	var (
		rows []MetricRow
		errs []error
	)
	for _, t := range CampaignTypes {
		if _, ok := routes[t].ReportTypes[kind]; !ok {
			continue
		}
		got, err := c.RunReport(ctx, t, kind, start, end)
		if err != nil {
			if ctx.Err() != nil {
				return rows, ctx.Err()
			}
			c.logger.Warn(ctx, "metrics report failed",
				observability.Field{Key: "campaign_type", Value: string(t)},
				observability.Field{Key: "report_kind", Value: string(kind)},
				observability.Field{Key: "error", Value: err.Error()},
			)
			errs = append(errs, err)
			continue
		}
		rows = append(rows, got...)
	}
	return rows, errors.Join(errs...)
}
