package services_test

import (
	"sync"
	"testing"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
)

func TestSyntheticMetricsShape(t *testing.T) {
	src := services.NewSyntheticMetrics()

	data, err := src.Metrics(1)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if len(data.SalesTrend) != 7 {
		t.Errorf("trend points = %d, want 7", len(data.SalesTrend))
	}
	if len(data.TopSelling) != 5 {
		t.Errorf("top sellers = %d, want 5", len(data.TopSelling))
	}
	if len(data.MonthsData) != 12 {
		t.Errorf("month rows = %d, want 12", len(data.MonthsData))
	}
}

func TestSyntheticMetricsRanges(t *testing.T) {
	src := services.NewSyntheticMetrics()

	for i := 0; i < 50; i++ {
		data, err := src.Metrics(1)
		if err != nil {
			t.Fatalf("metrics: %v", err)
		}

		s := data.Stats
		if s.TotalSalesAmount < 100000 || s.TotalSalesAmount >= 200000 {
			t.Fatalf("total sales %d out of range", s.TotalSalesAmount)
		}
		if s.TotalTransactions < 10 || s.TotalTransactions >= 51 {
			t.Fatalf("transactions %d out of range", s.TotalTransactions)
		}
		if s.TotalStock < 500 || s.TotalStock >= 1000 {
			t.Fatalf("stock %d out of range", s.TotalStock)
		}
		if s.UniqueCustomers < 5 || s.UniqueCustomers >= 31 {
			t.Fatalf("customers %d out of range", s.UniqueCustomers)
		}

		for _, p := range data.SalesTrend {
			if p.Amount < 2000 || p.Amount >= 15000 {
				t.Fatalf("trend amount %d out of range", p.Amount)
			}
		}
		for _, m := range data.MonthsData {
			if m.Change < -7 || m.Change >= 8 {
				t.Fatalf("month change %d out of range", m.Change)
			}
		}
	}
}

func TestSyntheticMetricsConcurrentCallers(t *testing.T) {
	src := services.NewSyntheticMetrics()

	// Request handlers and the broadcast scheduler share one instance,
	// so concurrent calls must not corrupt the generator.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				data, err := src.Metrics(1)
				if err != nil {
					t.Errorf("metrics: %v", err)
					return
				}
				if data.Stats.TotalSalesAmount < 100000 || data.Stats.TotalSalesAmount >= 200000 {
					t.Errorf("total sales %d out of range", data.Stats.TotalSalesAmount)
					return
				}
			}
		}()
	}
	wg.Wait()
}
