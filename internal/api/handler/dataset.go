package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/forecast-venus-api/internal/scheduler"
	"github.com/vfg2006/forecast-venus-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-venus-api/pkg/log"
)

// RunDatasetRefresh dispara uma recarga imediata do dataset
func RunDatasetRefresh(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: recarga manual solicitada")

		if err := service.RunNow(r.Context()); err != nil {
			logger.WithError(err).Error("dataset: falha na recarga manual")
			apiErrors.WriteError(w, apiErrors.ErrDatasetMalformed, "Falha ao recarregar o dataset", map[string]any{
				"reason": err.Error(),
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("dataset: falha ao codificar resposta")
		}
	})
}

// GetDatasetStatus expõe o estado do snapshot corrente e do agendador
func GetDatasetStatus(service *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("dataset: falha ao codificar resposta")
		}
	})
}
