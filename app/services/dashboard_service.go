package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DashboardStats is the headline figures block.
type DashboardStats struct {
	TotalSalesAmount  int `json:"total_sales_amount"`
	TotalTransactions int `json:"total_transactions"`
	TotalStock        int `json:"total_stock"`
	UniqueCustomers   int `json:"unique_customers"`
}

// TrendPoint is one day in the 7-day sales trend.
type TrendPoint struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// TopSeller is one row in the top-5 sellers list.
type TopSeller struct {
	Name    string `json:"name"`
	SoldQty int    `json:"sold_qty"`
}

// MonthRow is one row in the 12-month report table.
type MonthRow struct {
	Month      string `json:"month"`
	Sales      int    `json:"sales"`
	Profit     int    `json:"profit"`
	Change     int    `json:"change"`
	TopProduct string `json:"top_product"`
}

// DashboardData bundles everything the analytics view renders.
type DashboardData struct {
	Stats      DashboardStats `json:"stats"`
	SalesTrend []TrendPoint   `json:"sales_trend"`
	TopSelling []TopSeller    `json:"top_selling"`
	MonthsData []MonthRow     `json:"months_data"`
}

// MetricsSource produces the dashboard figures. The synthetic generator
// is the only implementation today; real aggregation over orders can be
// swapped in without touching the render path.
type MetricsSource interface {
	Metrics(shopkeeperID uint) (DashboardData, error)
}

// SyntheticMetrics generates placeholder figures from a random source
// on every call. Safe for concurrent use: request handlers and the
// broadcast scheduler share one instance.
type SyntheticMetrics struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSyntheticMetrics seeds a generator from the current time.
func NewSyntheticMetrics() *SyntheticMetrics {
	return &SyntheticMetrics{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Metrics implements MetricsSource.
func (s *SyntheticMetrics) Metrics(_ uint) (DashboardData, error) {
	stats := DashboardStats{
		TotalSalesAmount:  s.between(100000, 200000),
		TotalTransactions: s.between(10, 51),
		TotalStock:        s.between(500, 1000),
		UniqueCustomers:   s.between(5, 31),
	}

	today := s.now()
	trend := make([]TrendPoint, 7)
	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, -(6 - i))
		trend[i] = TrendPoint{
			Date:   d.Format("Jan 2"),
			Amount: s.between(2000, 15000),
		}
	}

	top := make([]TopSeller, 5)
	for i := range top {
		top[i] = TopSeller{
			Name:    fmt.Sprintf("Demo Product %d", i+1),
			SoldQty: s.between(1, 17),
		}
	}

	months := make([]MonthRow, 12)
	for m := range months {
		months[m] = MonthRow{
			Month:      time.Date(2025, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Sales:      s.between(100000, 200000),
			Profit:     s.between(10000, 50000),
			Change:     s.between(0, 15) - 7,
			TopProduct: fmt.Sprintf("Product %d", m+1),
		}
	}

	return DashboardData{
		Stats:      stats,
		SalesTrend: trend,
		TopSelling: top,
		MonthsData: months,
	}, nil
}

// between returns a pseudo-random int in [lo, hi). The generator state
// is guarded: *rand.Rand is not goroutine-safe on its own.
func (s *SyntheticMetrics) between(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(hi-lo) + lo
}
