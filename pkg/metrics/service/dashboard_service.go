package service

import (
	"time"

	"agricrm/entities"
	"agricrm/pkg/metrics"
	"agricrm/pkg/seed"
)

// Window is a half-open-ish reporting period [Start, End]. Previous() is
// the immediately preceding period of equal length, used for growth
// comparisons.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Previous() Window {
	length := w.End.Sub(w.Start)
	return Window{Start: w.Start.Add(-length), End: w.Start}
}

// rangeDays maps the UI time-range keys to a number of days back from now.
// "all" deliberately maps to a year; that approximation is the committed
// dashboard behavior, not an oversight.
var rangeDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"6m":  180,
	"1y":  365,
	"all": 365,
}

// ResolveWindow turns a time-range key into a concrete window ending now.
// Unknown keys fall back to 30d.
func ResolveWindow(timeRange string, now time.Time) Window {
	days, ok := rangeDays[timeRange]
	if !ok {
		days = rangeDays["30d"]
	}
	return Window{Start: now.AddDate(0, 0, -days), End: now}
}

// Data-source labels for analytics payloads. Synthetic rows come from the
// seed package and are never mixed with live aggregates.
const (
	SourceLive      = "live"
	SourceSynthetic = "synthetic"
)

type Overview struct {
	TotalLeads              int     `json:"total_leads"`
	LeadsGrowthPercent      float64 `json:"leads_growth_percent"`
	ConversionRate          float64 `json:"conversion_rate"`
	ConversionGrowthPercent float64 `json:"conversion_growth_percent"`
	Revenue                 float64 `json:"revenue"`
	RevenueGrowthPercent    float64 `json:"revenue_growth_percent"`
	NewFarmers              int     `json:"new_farmers"`
	FarmersGrowthPercent    float64 `json:"farmers_growth_percent"`
}

type PipelineStats struct {
	ActiveOpportunities int     `json:"active_opportunities"`
	ConversionRate      float64 `json:"conversion_rate"`
	AvgDealCycleDays    float64 `json:"avg_deal_cycle_days"`
	TotalRevenue        float64 `json:"total_revenue"`
}

type FarmerStats struct {
	TotalFarmers     int64   `json:"total_farmers"`
	TotalAcreage     float64 `json:"total_acreage"`
	DistrictsCovered int     `json:"districts_covered"`
	ActiveThisMonth  int     `json:"active_this_month"`
}

type ProductStats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalRevenue   float64 `json:"total_revenue"`
	UnitsSold      int     `json:"units_sold"`
	AvgPrice       float64 `json:"avg_price"`
	BestSellerID   uint    `json:"best_seller_id,omitempty"`
	BestSellerName string  `json:"best_seller_name,omitempty"`
}

type LeadStats struct {
	TotalLeads int64 `json:"total_leads"`
	NewLeads   int   `json:"new_leads"`
	HotLeads   int   `json:"hot_leads"`   // qualified or negotiation
	StaleLeads int   `json:"stale_leads"` // open for more than a week, still not terminal
}

type TerritoryReport struct {
	DataSource string             `json:"source"` // live|synthetic
	Rows       []seed.TerritoryRow `json:"rows"`
}

type CategoryReport struct {
	DataSource string            `json:"source"`
	Rows       []seed.CategoryRow `json:"rows"`
}

type SourceReport struct {
	DataSource string          `json:"source"`
	Rows       []seed.SourceRow `json:"rows"`
}

type SeriesPoint struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Revenue     float64 `json:"revenue"`
	Leads       int     `json:"leads"`
	Conversions int     `json:"conversions"`
}

type DashboardService interface {
	Overview(w Window) (*Overview, error)
	PipelineStats(now time.Time) (*PipelineStats, error)
	FarmerStats(now time.Time) (*FarmerStats, error)
	ProductStats() (*ProductStats, error)
	LeadStats(now time.Time) (*LeadStats, error)
	TerritoryPerformance(w Window) (*TerritoryReport, error)
	CategoryPerformance(w Window) (*CategoryReport, error)
	SourcePerformance(w Window) (*SourceReport, error)
	SalesSeries(w Window) ([]SeriesPoint, error)
	Funnel() ([]metrics.FunnelStage, error)
	RecentActivity(limit int) ([]entities.Lead, error)
}
