package safety

import (
	"fmt"
	"math"
	"strconv"
)

// Limits bounds every bid and budget change
type Limits struct {
	MaxBidChangePct    float64
	MaxBudgetChangePct float64
	MinBidFloor        float64
	MaxBidCeiling      float64
	MaxDailySpend      *float64
}

// DefaultLimits are applied until a user configures their own
func DefaultLimits() Limits {
	return Limits{
		MaxBidChangePct:    50,
		MaxBudgetChangePct: 100,
		MinBidFloor:        0.02,
		MaxBidCeiling:      100,
	}
}

// ViolationError explains why a proposed value was rejected
type ViolationError struct {
	Reason string
}

func (e *ViolationError) Error() string {
	return e.Reason
}

func violation(format string, args ...interface{}) error {
	return &ViolationError{Reason: fmt.Sprintf(format, args...)}
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// changePercent is the absolute relative change, or false when current is zero
func changePercent(current, proposed float64) (float64, bool) {
	if current <= 0 {
		return 0, false
	}
	return math.Abs((proposed-current)/current) * 100, true
}

// ValidateAbsoluteBid checks a bid against the floor and ceiling only
func ValidateAbsoluteBid(bid float64, limits Limits) error {
	if bid < limits.MinBidFloor {
		return violation("Bid $%.2f is below minimum floor of $%.2f", bid, limits.MinBidFloor)
	}
	if bid > limits.MaxBidCeiling {
		return violation("Bid $%.2f exceeds maximum ceiling of $%.2f", bid, limits.MaxBidCeiling)
	}
	return nil
}

// ValidateBidChange checks floor, ceiling and the relative change from current
func ValidateBidChange(current, proposed float64, limits Limits) error {
	if err := ValidateAbsoluteBid(proposed, limits); err != nil {
		return err
	}
	if change, ok := changePercent(current, proposed); ok && change > limits.MaxBidChangePct {
		return violation("Bid change of %.1f%% exceeds maximum allowed change of %s%%", change, pct(limits.MaxBidChangePct))
	}
	return nil
}

// ValidateBudgetChange checks the daily spend cap and the relative change from current
func ValidateBudgetChange(current, proposed float64, limits Limits) error {
	if limits.MaxDailySpend != nil && proposed > *limits.MaxDailySpend {
		return violation("Budget $%.2f exceeds maximum daily spend limit of $%.2f", proposed, *limits.MaxDailySpend)
	}
	if change, ok := changePercent(current, proposed); ok && change > limits.MaxBudgetChangePct {
		return violation("Budget change of %.1f%% exceeds maximum allowed change of %s%%", change, pct(limits.MaxBudgetChangePct))
	}
	return nil
}
