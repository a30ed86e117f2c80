package domain

import "fmt"

// Plan is a billing plan accepted by the checkout endpoint.
// This is a value object that enforces valid plan values.
type Plan string

// Valid plans
const (
	PlanMonthly Plan = "monthly"
	PlanYearly  Plan = "yearly"
)

// NewPlan creates a new Plan value object with validation
func NewPlan(value string) (Plan, error) {
	p := Plan(value)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks if the plan is valid
func (p Plan) Validate() error {
	switch p {
	case PlanMonthly, PlanYearly:
		return nil
	default:
		return fmt.Errorf("invalid plan %q: must be monthly or yearly", string(p))
	}
}

// String returns the string representation
func (p Plan) String() string {
	return string(p)
}

// Interval returns the billing interval reported back by the subscription endpoint.
func (p Plan) Interval() Interval {
	if p == PlanYearly {
		return IntervalYear
	}
	return IntervalMonth
}

// Interval is the billing cycle of an active subscription.
type Interval string

const (
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)
