// Package seed holds the deterministic demo numbers the analytics views
// fall back to when a window has no rows at all. Callers must label any
// payload built from here as synthetic; these values are never mixed into
// live aggregates.
package seed

type TerritoryRow struct {
	Territory      string  `json:"territory"`
	Leads          int     `json:"leads"`
	Conversions    int     `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversion_rate"`
}

type CategoryRow struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Products int     `json:"products"`
}

type SourceRow struct {
	Source         string  `json:"source"`
	Total          int     `json:"total"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversion_rate"`
}

func Territories() []TerritoryRow {
	return []TerritoryRow{
		{Territory: "North District", Leads: 35, Conversions: 18, Revenue: 125000, ConversionRate: 51.4},
		{Territory: "South District", Leads: 42, Conversions: 22, Revenue: 156000, ConversionRate: 52.4},
		{Territory: "East District", Leads: 28, Conversions: 12, Revenue: 89000, ConversionRate: 42.9},
		{Territory: "West District", Leads: 31, Conversions: 16, Revenue: 112000, ConversionRate: 51.6},
		{Territory: "Central District", Leads: 25, Conversions: 14, Revenue: 98000, ConversionRate: 56.0},
	}
}

func Categories() []CategoryRow {
	return []CategoryRow{
		{Category: "Seeds", Quantity: 1250, Revenue: 87500, Products: 8},
		{Category: "Fertilizers", Quantity: 890, Revenue: 156000, Products: 12},
		{Category: "Pesticides", Quantity: 650, Revenue: 98000, Products: 15},
		{Category: "Tools", Quantity: 320, Revenue: 45000, Products: 6},
		{Category: "Irrigation", Quantity: 180, Revenue: 72000, Products: 4},
	}
}

func Sources() []SourceRow {
	return []SourceRow{
		{Source: "Website", Total: 45, Converted: 12, ConversionRate: 26.7},
		{Source: "Referral", Total: 32, Converted: 18, ConversionRate: 56.3},
		{Source: "Social Media", Total: 28, Converted: 8, ConversionRate: 28.6},
		{Source: "Cold Call", Total: 22, Converted: 5, ConversionRate: 22.7},
		{Source: "Trade Show", Total: 15, Converted: 9, ConversionRate: 60.0},
	}
}
