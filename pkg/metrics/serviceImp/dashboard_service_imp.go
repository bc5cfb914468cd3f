package serviceImp

import (
	"sort"
	"time"

	"agricrm/entities"
	frepo "agricrm/pkg/farmer/repository"
	lrepo "agricrm/pkg/lead/repository"
	"agricrm/pkg/metrics"
	"agricrm/pkg/metrics/service"
	"agricrm/pkg/pipeline"
	prepo "agricrm/pkg/product/repository"
	purepo "agricrm/pkg/purchase/repository"
	"agricrm/pkg/seed"
)

type dashboardSvc struct {
	leads     lrepo.LeadRepository
	farmers   frepo.FarmerRepository
	products  prepo.ProductRepository
	purchases purepo.PurchaseRepository
}

func New(
	leads lrepo.LeadRepository,
	farmers frepo.FarmerRepository,
	products prepo.ProductRepository,
	purchases purepo.PurchaseRepository,
) service.DashboardService {
	return &dashboardSvc{leads: leads, farmers: farmers, products: products, purchases: purchases}
}

func (s *dashboardSvc) leadsIn(w service.Window) ([]entities.Lead, error) {
	return s.leads.List(lrepo.LeadFilter{From: &w.Start, To: &w.End})
}

func (s *dashboardSvc) purchasesIn(w service.Window) ([]entities.Purchase, error) {
	return s.purchases.List(purepo.PurchaseFilter{From: &w.Start, To: &w.End})
}

func (s *dashboardSvc) farmersIn(w service.Window) ([]entities.Farmer, error) {
	return s.farmers.List(frepo.FarmerFilter{From: &w.Start, To: &w.End})
}

// Overview compares the window against the immediately preceding window of
// equal length. The reads are independent single queries; there is no
// cross-entity transaction to keep them consistent with each other.
func (s *dashboardSvc) Overview(w service.Window) (*service.Overview, error) {
	prev := w.Previous()

	curLeads, err := s.leadsIn(w)
	if err != nil {
		return nil, err
	}
	prevLeads, err := s.leadsIn(prev)
	if err != nil {
		return nil, err
	}
	curPurchases, err := s.purchasesIn(w)
	if err != nil {
		return nil, err
	}
	prevPurchases, err := s.purchasesIn(prev)
	if err != nil {
		return nil, err
	}
	curFarmers, err := s.farmersIn(w)
	if err != nil {
		return nil, err
	}
	prevFarmers, err := s.farmersIn(prev)
	if err != nil {
		return nil, err
	}

	curRate := metrics.ConversionRate(curLeads)
	prevRate := metrics.ConversionRate(prevLeads)
	curRevenue := metrics.Revenue(curPurchases)
	prevRevenue := metrics.Revenue(prevPurchases)

	return &service.Overview{
		TotalLeads:              len(curLeads),
		LeadsGrowthPercent:      metrics.GrowthPercent(float64(len(curLeads)), float64(len(prevLeads))),
		ConversionRate:          curRate,
		ConversionGrowthPercent: metrics.GrowthPercent(curRate, prevRate),
		Revenue:                 curRevenue,
		RevenueGrowthPercent:    metrics.GrowthPercent(curRevenue, prevRevenue),
		NewFarmers:              len(curFarmers),
		FarmersGrowthPercent:    metrics.GrowthPercent(float64(len(curFarmers)), float64(len(prevFarmers))),
	}, nil
}

func (s *dashboardSvc) PipelineStats(now time.Time) (*service.PipelineStats, error) {
	leads, err := s.leads.List(lrepo.LeadFilter{})
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.List(purepo.PurchaseFilter{})
	if err != nil {
		return nil, err
	}

	active := 0
	for _, l := range leads {
		st := pipeline.Stage(l.Status)
		if st != pipeline.StageWon && st != pipeline.StageLost {
			active++
		}
	}

	return &service.PipelineStats{
		ActiveOpportunities: active,
		ConversionRate:      metrics.ConversionRate(leads),
		AvgDealCycleDays:    metrics.AvgCycleDays(leads, now),
		TotalRevenue:        metrics.Revenue(purchases),
	}, nil
}

func (s *dashboardSvc) FarmerStats(now time.Time) (*service.FarmerStats, error) {
	total, err := s.farmers.Count()
	if err != nil {
		return nil, err
	}
	farmers, err := s.farmers.List(frepo.FarmerFilter{})
	if err != nil {
		return nil, err
	}

	var acreage float64
	districts := map[string]struct{}{}
	for _, f := range farmers {
		if f.Acreage != nil {
			acreage += *f.Acreage
		}
		if f.District != "" {
			districts[f.District] = struct{}{}
		}
	}

	monthAgo := now.AddDate(0, 0, -30)
	recent, err := s.purchases.List(purepo.PurchaseFilter{From: &monthAgo, To: &now})
	if err != nil {
		return nil, err
	}
	buyers := map[uint]struct{}{}
	for _, p := range recent {
		buyers[p.FarmerID] = struct{}{}
	}

	return &service.FarmerStats{
		TotalFarmers:     total,
		TotalAcreage:     acreage,
		DistrictsCovered: len(districts),
		ActiveThisMonth:  len(buyers),
	}, nil
}

func (s *dashboardSvc) ProductStats() (*service.ProductStats, error) {
	total, err := s.products.Count()
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(prepo.ProductFilter{})
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.List(purepo.PurchaseFilter{})
	if err != nil {
		return nil, err
	}

	var priceSum float64
	for _, p := range products {
		if p.Price != nil {
			priceSum += *p.Price
		}
	}
	avgPrice := 0.0
	if len(products) > 0 {
		avgPrice = priceSum / float64(len(products))
	}

	units := 0
	sales := map[uint]int{}
	names := map[uint]string{}
	for _, p := range purchases {
		q := 0
		if p.Quantity != nil {
			q = *p.Quantity
		}
		units += q
		sales[p.ProductID] += q
		if p.Product != nil {
			names[p.ProductID] = p.Product.Name
		}
	}
	var bestID uint
	bestQty := 0
	for id, q := range sales {
		if q > bestQty {
			bestID, bestQty = id, q
		}
	}

	return &service.ProductStats{
		TotalProducts:  total,
		TotalRevenue:   metrics.Revenue(purchases),
		UnitsSold:      units,
		AvgPrice:       avgPrice,
		BestSellerID:   bestID,
		BestSellerName: names[bestID],
	}, nil
}

func (s *dashboardSvc) LeadStats(now time.Time) (*service.LeadStats, error) {
	total, err := s.leads.Count()
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.List(lrepo.LeadFilter{})
	if err != nil {
		return nil, err
	}

	stats := &service.LeadStats{TotalLeads: total}
	for _, l := range leads {
		st := pipeline.Stage(l.Status)
		if st == pipeline.StageNew {
			stats.NewLeads++
		}
		if st == pipeline.StageQualified || st == pipeline.StageNegotiation {
			stats.HotLeads++
		}
		if st != pipeline.StageWon && st != pipeline.StageLost &&
			pipeline.AgeInDays(l.CreatedAt, now) > 7 {
			stats.StaleLeads++
		}
	}
	return stats, nil
}

// TerritoryPerformance groups the window's leads and purchases by the
// farmer's district (territory is just the district, there is no separate
// entity). An empty window substitutes the labeled synthetic rows.
func (s *dashboardSvc) TerritoryPerformance(w service.Window) (*service.TerritoryReport, error) {
	leads, err := s.leadsIn(w)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return &service.TerritoryReport{DataSource: service.SourceSynthetic, Rows: seed.Territories()}, nil
	}
	purchases, err := s.purchasesIn(w)
	if err != nil {
		return nil, err
	}

	type acc struct {
		leads, conversions int
		revenue            float64
	}
	byDistrict := map[string]*acc{}
	district := func(f *entities.Farmer) string {
		if f == nil || f.District == "" {
			return "Unknown District"
		}
		return f.District
	}
	for _, l := range leads {
		d := district(l.Farmer)
		if byDistrict[d] == nil {
			byDistrict[d] = &acc{}
		}
		byDistrict[d].leads++
		if pipeline.Stage(l.Status) == pipeline.StageWon {
			byDistrict[d].conversions++
		}
	}
	for _, p := range purchases {
		d := district(p.Farmer)
		if byDistrict[d] != nil {
			byDistrict[d].revenue += metrics.LineRevenue(p)
		}
	}

	rows := make([]seed.TerritoryRow, 0, len(byDistrict))
	for d, a := range byDistrict {
		rate := 0.0
		if a.leads > 0 {
			rate = float64(a.conversions) / float64(a.leads) * 100
		}
		rows = append(rows, seed.TerritoryRow{
			Territory:      d,
			Leads:          a.leads,
			Conversions:    a.conversions,
			Revenue:        a.revenue,
			ConversionRate: rate,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return &service.TerritoryReport{DataSource: service.SourceLive, Rows: rows}, nil
}

func (s *dashboardSvc) CategoryPerformance(w service.Window) (*service.CategoryReport, error) {
	purchases, err := s.purchasesIn(w)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return &service.CategoryReport{DataSource: service.SourceSynthetic, Rows: seed.Categories()}, nil
	}

	type acc struct {
		quantity int
		revenue  float64
		products map[string]struct{}
	}
	byCat := map[string]*acc{}
	for _, p := range purchases {
		cat := "Unknown"
		name := ""
		if p.Product != nil {
			name = p.Product.Name
			if p.Product.Category != "" {
				cat = p.Product.Category
			}
		}
		if byCat[cat] == nil {
			byCat[cat] = &acc{products: map[string]struct{}{}}
		}
		if p.Quantity != nil {
			byCat[cat].quantity += *p.Quantity
		}
		byCat[cat].revenue += metrics.LineRevenue(p)
		if name != "" {
			byCat[cat].products[name] = struct{}{}
		}
	}

	rows := make([]seed.CategoryRow, 0, len(byCat))
	for cat, a := range byCat {
		rows = append(rows, seed.CategoryRow{
			Category: cat,
			Quantity: a.quantity,
			Revenue:  a.revenue,
			Products: len(a.products),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return &service.CategoryReport{DataSource: service.SourceLive, Rows: rows}, nil
}

// SourcePerformance reads the real source column. Leads created without a
// source report under "unknown"; nothing is derived from ids.
func (s *dashboardSvc) SourcePerformance(w service.Window) (*service.SourceReport, error) {
	leads, err := s.leadsIn(w)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return &service.SourceReport{DataSource: service.SourceSynthetic, Rows: seed.Sources()}, nil
	}

	type acc struct{ total, converted int }
	bySource := map[string]*acc{}
	for _, l := range leads {
		src := l.Source
		if src == "" {
			src = "unknown"
		}
		if bySource[src] == nil {
			bySource[src] = &acc{}
		}
		bySource[src].total++
		if pipeline.Stage(l.Status) == pipeline.StageWon {
			bySource[src].converted++
		}
	}

	rows := make([]seed.SourceRow, 0, len(bySource))
	for src, a := range bySource {
		rate := 0.0
		if a.total > 0 {
			rate = float64(a.converted) / float64(a.total) * 100
		}
		rows = append(rows, seed.SourceRow{Source: src, Total: a.total, Converted: a.converted, ConversionRate: rate})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return &service.SourceReport{DataSource: service.SourceLive, Rows: rows}, nil
}

// SalesSeries buckets the window into calendar days: daily revenue from
// purchases, daily created leads, and daily conversions (leads created that
// day that are now won).
func (s *dashboardSvc) SalesSeries(w service.Window) ([]service.SeriesPoint, error) {
	purchases, err := s.purchasesIn(w)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadsIn(w)
	if err != nil {
		return nil, err
	}

	day := func(t time.Time) string { return t.Format("2006-01-02") }
	points := map[string]*service.SeriesPoint{}

	var order []string
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		key := day(d)
		points[key] = &service.SeriesPoint{Date: key}
		order = append(order, key)
	}
	for _, p := range purchases {
		if pt, ok := points[day(p.PurchaseDate)]; ok {
			pt.Revenue += metrics.LineRevenue(p)
		}
	}
	for _, l := range leads {
		if pt, ok := points[day(l.CreatedAt)]; ok {
			pt.Leads++
			if pipeline.Stage(l.Status) == pipeline.StageWon {
				pt.Conversions++
			}
		}
	}

	out := make([]service.SeriesPoint, 0, len(order))
	for _, key := range order {
		out = append(out, *points[key])
	}
	return out, nil
}

func (s *dashboardSvc) Funnel() ([]metrics.FunnelStage, error) {
	leads, err := s.leads.List(lrepo.LeadFilter{})
	if err != nil {
		return nil, err
	}
	return metrics.Funnel(leads), nil
}

func (s *dashboardSvc) RecentActivity(limit int) ([]entities.Lead, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.leads.List(lrepo.LeadFilter{Limit: limit})
}
