package handler

import (
	"net/http"

	"adsync/internal/apierrors"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
)

type MetricsQuery struct {
	Range string `form:"range" binding:"omitempty,oneof=today 7d 30d 90d lifetime"`
}

// PeriodMetrics is one period's totals with the ratios derived from them
type PeriodMetrics struct {
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Cost        float64  `json:"cost"`
	Orders      int64    `json:"orders"`
	Sales       float64  `json:"sales"`
	ACoS        *float64 `json:"acos"`
	ROAS        *float64 `json:"roas"`
	CTR         *float64 `json:"ctr"`
	CPC         *float64 `json:"cpc"`
}

// Trends are percentage changes from the previous period, nil when there is no baseline
type Trends struct {
	Impressions *float64 `json:"impressions"`
	Clicks      *float64 `json:"clicks"`
	Cost        *float64 `json:"cost"`
	Orders      *float64 `json:"orders"`
	Sales       *float64 `json:"sales"`
	ACoS        *float64 `json:"acos"`
	ROAS        *float64 `json:"roas"`
}

type metricsResponse struct {
	Range          string               `json:"range"`
	CurrentPeriod  PeriodMetrics        `json:"current_period"`
	PreviousPeriod PeriodMetrics        `json:"previous_period"`
	Trends         Trends               `json:"trends"`
	Campaigns      store.CampaignCounts `json:"campaigns"`
}

func newPeriodMetrics(m store.MetricTotals) PeriodMetrics {
	return PeriodMetrics{
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Cost:        m.Cost,
		Orders:      m.Orders,
		Sales:       m.Sales,
		ACoS:        m.ACoS(),
		ROAS:        m.ROAS(),
		CTR:         m.CTR(),
		CPC:         m.CPC(),
	}
}

func trend(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	v := (*current - *previous) / *previous * 100
	return &v
}

func value[T int64 | float64](v T) *float64 {
	f := float64(v)
	return &f
}

func trends(current, previous PeriodMetrics) Trends {
	return Trends{
		Impressions: trend(value(current.Impressions), value(previous.Impressions)),
		Clicks:      trend(value(current.Clicks), value(previous.Clicks)),
		Cost:        trend(value(current.Cost), value(previous.Cost)),
		Orders:      trend(value(current.Orders), value(previous.Orders)),
		Sales:       trend(value(current.Sales), value(previous.Sales)),
		ACoS:        trend(current.ACoS, previous.ACoS),
		ROAS:        trend(current.ROAS, previous.ROAS),
	}
}

// HandleMetrics returns the profile's campaign totals for the range, the same-length
// period before it and the change between the two. Lifetime has no previous period.
func (h *Handler) HandleMetrics(c *gin.Context) {
	var q MetricsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	rangeKey := q.Range
	if rangeKey == "" {
		rangeKey = "30d"
	}

	now := h.now()
	var from, to string
	days, bounded := rangeDays[rangeKey]
	if bounded {
		from = now.AddDate(0, 0, -days+1).Format("20060102")
		to = now.Format("20060102")
	}

	current, err := h.reader.SumCampaignMetrics(ctx, profileID, from, to)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	var previous store.MetricTotals
	if bounded {
		previous, err = h.reader.SumCampaignMetrics(ctx, profileID,
			now.AddDate(0, 0, -2*days+1).Format("20060102"),
			now.AddDate(0, 0, -days).Format("20060102"),
		)
		if err != nil {
			apierrors.InternalError(c, err)
			return
		}
	}

	counts, err := h.reader.CountCampaigns(ctx, profileID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	cur, prev := newPeriodMetrics(current), newPeriodMetrics(previous)
	c.JSON(http.StatusOK, metricsResponse{
		Range:          rangeKey,
		CurrentPeriod:  cur,
		PreviousPeriod: prev,
		Trends:         trends(cur, prev),
		Campaigns:      counts,
	})
}
