package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"aureus/internal/services"
)

func TestDashboardHandler_Summary(t *testing.T) {
	var gotFilter string
	svc := &mockLedgerService{
		summaryFn: func(categoryFilter string) (*services.DashboardSummary, error) {
			gotFilter = categoryFilter
			return &services.DashboardSummary{
				MonthTotal:    35.21,
				EntryCount:    4,
				CategoryTotal: 30.21,
				TotalsByCategory: map[string]float64{
					"Groceries": 30.21,
					"Transport": 5,
					"Housing":   0,
				},
			}, nil
		},
	}
	r := gin.New()
	r.GET("/dashboard", NewDashboardHandler(svc).Summary)

	rec := doRequest(r, "GET", "/dashboard?category=Groceries", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotFilter != "Groceries" {
		t.Errorf("expected filter Groceries, got %q", gotFilter)
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["month_total"] != 35.21 {
		t.Errorf("expected month total 35.21, got %v", summary["month_total"])
	}
	totals := summary["totals_by_category"].(map[string]interface{})
	if totals["Housing"] != float64(0) {
		t.Errorf("zero-filled categories must appear in the chart data, got %v", totals)
	}
}
