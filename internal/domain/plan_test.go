package domain

import (
	"testing"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Plan
		wantErr bool
	}{
		{name: "valid monthly", value: "monthly", want: PlanMonthly},
		{name: "valid yearly", value: "yearly", want: PlanYearly},
		{name: "invalid uppercase", value: "Monthly", wantErr: true},
		{name: "invalid empty", value: "", wantErr: true},
		{name: "invalid weekly", value: "weekly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPlan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPlan() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewPlan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlan_Interval(t *testing.T) {
	if PlanMonthly.Interval() != IntervalMonth {
		t.Errorf("monthly plan should bill per month")
	}
	if PlanYearly.Interval() != IntervalYear {
		t.Errorf("yearly plan should bill per year")
	}
}
