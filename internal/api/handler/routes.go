package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/forecast-venus-api/internal/api/handler/router"
	"github.com/vfg2006/forecast-venus-api/internal/scheduler"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/authenticating"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/paneling"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

// Panels retorna as rotas dos painéis do dashboard. O segmento :panel
// resolve tanto as medidas quanto o painel de performance.
func Panels(service paneling.Composer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/panels/:panel",
			Method:  http.MethodGet,
			Handler: GetPanel(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Dataset(service *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RunDatasetRefresh(service),
		},
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service),
		},
	}
}
