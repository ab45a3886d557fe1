package handler

import (
	"net/http"

	"github.com/vfg2006/target-performance-api/internal/api/handler/router"
	"github.com/vfg2006/target-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/target-performance-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(path string, handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Targets(service targeting.Targeter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     CreateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/targets/mine",
			Method:      http.MethodGet,
			Handler:     ListMyTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/team-members",
			Method:      http.MethodGet,
			Handler:     ListTeamMembersTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Performance(reporter reporting.Reporter, rankingService ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance/:kind/accounts",
			Method:      http.MethodGet,
			Handler:     GetAccountsPerformance(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/performance/:kind/me",
			Method:      http.MethodGet,
			Handler:     GetMyPerformance(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/:kind/me/monthly",
			Method:      http.MethodGet,
			Handler:     GetMyMonthlyPerformance(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/:kind/team",
			Method:      http.MethodGet,
			Handler:     GetTeamPerformance(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/performance/:kind/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyPerformance(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/performance/:kind/ranking",
			Method:      http.MethodGet,
			Handler:     GetPerformanceRanking(rankingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
