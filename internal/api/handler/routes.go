package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
)

const analyticsPrefix = "/api/v1/analytics"

func Root(app config.App) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(app),
		},
	}
}

func Healthcheck(checker DatastoreChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker, ""),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker, ""),
		},
		{
			Path:    "/api/v1/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker, "v1"),
		},
	}
}

func Analytics(service analytics.Analyzer, queryTimeout time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    analyticsPrefix + "/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/overview",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/sales-trends",
			Method:  http.MethodGet,
			Handler: GetSalesTrends(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/channel-performance",
			Method:  http.MethodGet,
			Handler: GetChannelPerformance(service, queryTimeout),
		},
		{
			Path:    analyticsPrefix + "/hourly-sales",
			Method:  http.MethodGet,
			Handler: GetHourlySales(service, queryTimeout),
		},
	}
}
