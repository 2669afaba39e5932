package domain

import (
	"strings"
	"time"

	inventorydom "github.com/dmehra2102/retail-shop/internal/inventory/domain"
)

// SearchQuery filters the catalogue. Zero values match everything.
type SearchQuery struct {
	Name        string
	Category    inventorydom.Category
	InStockOnly bool
}

type SearchResult struct {
	Products   []*inventorydom.Product
	TotalCount int
	SearchTime time.Duration
}

// now is replaced in tests.
var now = time.Now

func (s *Shop) Search(q SearchQuery) SearchResult {
	start := now()
	name := strings.ToLower(strings.TrimSpace(q.Name))

	var found []*inventorydom.Product
	for _, p := range s.products {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.InStockOnly && !p.IsAvailable() {
			continue
		}
		found = append(found, p)
	}
	return SearchResult{
		Products:   found,
		TotalCount: len(found),
		SearchTime: now().Sub(start),
	}
}
