package collection_test

import (
	"reflect"
	"testing"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("Map = %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Filter = %v", got)
	}
}

func TestFirst(t *testing.T) {
	got, ok := collection.First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) > 1 })
	if !ok || got != "bb" {
		t.Errorf("First = %q, %v", got, ok)
	}
	_, ok = collection.First([]string{"a"}, func(s string) bool { return len(s) > 1 })
	if ok {
		t.Error("First should miss")
	}
}

func TestUniquePreservesOrder(t *testing.T) {
	got := collection.Unique([]string{"Lighting", "Appliances", "Lighting", "Clothing", "Appliances"})
	if !reflect.DeepEqual(got, []string{"Lighting", "Appliances", "Clothing"}) {
		t.Errorf("Unique = %v", got)
	}
}

func TestSortBy(t *testing.T) {
	got := collection.SortBy([]int{3, 1, 2}, func(a, b int) bool { return a < b })
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("SortBy = %v", got)
	}
}

func TestReduceAndSum(t *testing.T) {
	total := collection.Reduce([]int{1, 2, 3}, 0, func(carry, n int) int { return carry + n })
	if total != 6 {
		t.Errorf("Reduce = %d", total)
	}
	sum := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f })
	if sum != 4 {
		t.Errorf("Sum = %v", sum)
	}
}
