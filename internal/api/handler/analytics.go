package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// filterInput lê start_date, end_date e store_ids (repetido ou separado por vírgula)
func filterInput(r *http.Request) (analytics.FilterInput, error) {
	query := r.URL.Query()

	storeIDs, err := utils.ParseIntList(query["store_ids"])
	if err != nil {
		return analytics.FilterInput{}, fmt.Errorf("%w: store_ids: %v", domain.ErrInvalidInput, err)
	}

	return analytics.FilterInput{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		StoreIDs:  storeIDs,
	}, nil
}

func withQueryTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

func logRequest(r *http.Request, endpoint string, input analytics.FilterInput) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"endpoint":         endpoint,
		"filter_start":     input.StartDate,
		"filter_end":       input.EndDate,
		"filter_store_ids": input.StoreIDs,
	}).Debug("analytics: handling request")
}

// GetDashboard atende /dashboard e /overview
func GetDashboard(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "dashboard"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		result, err := service.BuildDashboard(ctx, input)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, newDashboardResponse(result))
	})
}

func GetKPIs(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "kpis"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		overview, err := service.GetOverview(ctx, input)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"overview": newKPIOverviewResponse(overview)})
	})
}

func GetSalesTrends(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "sales-trends"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		granularity, err := domain.ParseGranularity(r.URL.Query().Get("period"))
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		trends, err := service.GetSalesTrends(ctx, input, granularity)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"trends": newSalesTrendsResponse(trends)})
	})
}

func GetTopProducts(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "top-products"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		limit, err := utils.ParseOptionalInt(r.URL.Query().Get("limit"), 0)
		if err != nil {
			writeError(w, r, endpoint, fmt.Errorf("%w: limit: %v", domain.ErrInvalidInput, err))
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		products, err := service.GetTopProducts(ctx, input, limit)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"products": newTopProductsResponse(products)})
	})
}

func GetChannelPerformance(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "channel-performance"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		channels, err := service.GetChannelPerformance(ctx, input)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"channels": newChannelPerformanceResponse(channels)})
	})
}

func GetHourlySales(service analytics.Analyzer, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const endpoint = "hourly-sales"

		input, err := filterInput(r)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}
		logRequest(r, endpoint, input)

		ctx, cancel := withQueryTimeout(r, timeout)
		defer cancel()

		hourly, err := service.GetHourlySales(ctx, input)
		if err != nil {
			writeError(w, r, endpoint, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"hourly_sales": newHourlySalesResponse(hourly)})
	})
}
