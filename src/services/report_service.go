package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/wecare/backend/src/models"
)

const (
	ckInventoryReport = "inventory_report"

	reportRowFormat = "%-5v %-25v %-25v %-15v %-15v %-15v"
	reportRuleWidth = 150
)

// InventoryReportService renders the product table shown to the admin. The
// rendered text is cached and invalidated whenever a transaction commits, so
// repeated displays between transactions cost nothing.
type InventoryReportService struct {
	reportCache *cache.Cache
}

func NewInventoryReportService(ttl time.Duration) *InventoryReportService {
	return &InventoryReportService{
		reportCache: cache.New(ttl, 2*ttl),
	}
}

// Render returns the formatted product table, from cache when warm.
func (s *InventoryReportService) Render(products []models.Product) string {
	if cached, found := s.reportCache.Get(ckInventoryReport); found {
		return cached.(string)
	}

	rule := strings.Repeat("-", reportRuleWidth)

	var b strings.Builder
	b.WriteString("\nAvailable Products:\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, reportRowFormat, "ID", "PRODUCT NAME", "BRAND NAME", "QUANTITY", "COST PRICE", "ORIGIN COUNTRY")
	b.WriteString("\n" + rule + "\n")
	for _, p := range products {
		fmt.Fprintf(&b, reportRowFormat, p.ID, p.Name, p.Brand, p.Stock, p.CostPrice, p.Country)
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n")

	report := b.String()
	s.reportCache.Set(ckInventoryReport, report, cache.DefaultExpiration)
	return report
}

// Invalidate drops the cached report, forcing a rebuild on the next Render.
func (s *InventoryReportService) Invalidate() {
	s.reportCache.Delete(ckInventoryReport)
}
