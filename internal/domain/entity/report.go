package entity

import (
	"fmt"
	"time"
)

// DepartmentCount é o número de envios de um departamento.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// DepartmentCost is the total shipping cost (weight × unit price) of one department.
type DepartmentCost struct {
	Department string  `json:"department"`
	Total      float64 `json:"total"`
}

// DestinationCost is the total shipping cost charged for one destination name.
type DestinationCost struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// SourceSummary describes one loaded input file.
type SourceSummary struct {
	Location string   `json:"location"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
	Kinds    []string `json:"kinds"`
}

// ShippingReport contains every aggregate computed in one run.
type ShippingReport struct {
	GeneratedAt      time.Time         `json:"generated_at"`
	Departures       []SourceSummary   `json:"departures"`
	Countries        SourceSummary     `json:"countries"`
	TotalShipments   int               `json:"total_shipments"`
	JoinedShipments  int               `json:"joined_shipments"`
	DroppedShipments int               `json:"dropped_shipments"`
	UnmatchedCodes   []string          `json:"unmatched_codes,omitempty"`
	DepartmentCounts []DepartmentCount `json:"department_counts"`
	DepartmentCosts  []DepartmentCost  `json:"department_costs"`
	DestinationCosts []DestinationCost `json:"destination_costs"`
	TopDestination   *DestinationCost  `json:"top_destination,omitempty"`
	Labels           ReportLabels      `json:"labels"`
}

// ReportLabels carries the column captions used when printing or exporting.
type ReportLabels struct {
	Department string `json:"department"`
	Count      string `json:"count"`
	Name       string `json:"name"`
	Sum        string `json:"sum"`
}

// TotalCost sums the per-department totals.
func (r ShippingReport) TotalCost() float64 {
	var total float64
	for _, dc := range r.DepartmentCosts {
		total += dc.Total
	}
	return total
}

// TopDestinationLine is the headline naming the most expensive destination,
// or "" when no shipment matched a country.
func (r ShippingReport) TopDestinationLine() string {
	if r.TopDestination == nil {
		return ""
	}
	return fmt.Sprintf("%s have a maximum shipping cost: %.2f", r.TopDestination.Name, r.TopDestination.Total)
}
