package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopDestinationLine(t *testing.T) {
	report := ShippingReport{TopDestination: &DestinationCost{Name: "Poland", Total: 42}}
	assert.Equal(t, "Poland have a maximum shipping cost: 42.00", report.TopDestinationLine())

	assert.Empty(t, ShippingReport{}.TopDestinationLine())
}

func TestTotalCost(t *testing.T) {
	report := ShippingReport{DepartmentCosts: []DepartmentCost{{"1", 30}, {"2", 12.5}}}
	assert.InDelta(t, 42.5, report.TotalCost(), 1e-9)
}
