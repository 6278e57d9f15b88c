package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/paneling"
	"github.com/vfg2006/forecast-venus-api/pkg/apiErrors"
	"github.com/vfg2006/forecast-venus-api/pkg/log"
	"github.com/vfg2006/forecast-venus-api/pkg/utils"
)

const panelPerformance = "performance"

// GetPanel atende os painéis do dashboard. O segmento :panel aceita uma
// medida (sales, revenue, profit) ou "performance".
func GetPanel(service paneling.Composer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		panel := httprouter.ParamsFromContext(r.Context()).ByName("panel")

		selection, err := parseSelection(r)
		if err != nil {
			logger.WithError(err).Warn("panels: parâmetros de filtro inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		reference, err := parseReference(r)
		if err != nil {
			logger.WithError(err).Warn("panels: reference_date inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if panel == panelPerformance {
			response, err := service.PerformancePanel(r.Context(), selection, reference)
			if err != nil {
				logger.WithError(err).Error("panels: falha ao montar painel de performance")
				apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dados indisponíveis no momento", nil)
				return
			}

			writeJSON(w, logger, response)
			return
		}

		measure, err := domain.ParseMeasure(panel)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Painel desconhecido: "+panel, nil)
			return
		}

		horizon, err := parseHorizon(r)
		if err != nil {
			logger.WithError(err).Warn("panels: horizon inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.MetricPanel(r.Context(), measure, selection, reference, horizon)
		if err != nil {
			logger.WithError(err).Error("panels: falha ao montar painel de métrica")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dados indisponíveis no momento", nil)
			return
		}

		writeJSON(w, logger, response)
	})
}

// GetFilterOptions expõe os valores disponíveis para os componentes de filtro
func GetFilterOptions(service paneling.Composer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), service.FilterOptions())
	})
}

// parseSelection monta a seleção de filtros a partir da query string.
// Listas aceitam valores repetidos ou separados por vírgula.
func parseSelection(r *http.Request) (*domain.FilterSelection, error) {
	query := r.URL.Query()

	selection := &domain.FilterSelection{
		Stores:      parseList(query["stores"]),
		ClientTypes: parseList(query["client_types"]),
	}

	startDate, err := parseOptionalDate(query.Get("start_date"))
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválida")
	}
	selection.StartDate = startDate

	endDate, err := parseOptionalDate(query.Get("end_date"))
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválida")
	}
	selection.EndDate = endDate

	if selection.StartDate != nil && selection.EndDate != nil && selection.EndDate.Before(*selection.StartDate) {
		return nil, errors.New("end_date anterior a start_date")
	}

	return selection, nil
}

func parseReference(r *http.Request) (time.Time, error) {
	reference, err := parseOptionalDate(r.URL.Query().Get("reference_date"))
	if err != nil {
		return time.Time{}, errors.Wrap(err, "reference_date inválida")
	}
	if reference == nil {
		return time.Time{}, nil
	}
	return *reference, nil
}

func parseHorizon(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("horizon")
	if raw == "" {
		return 0, nil
	}

	horizon, err := strconv.Atoi(raw)
	if err != nil || horizon < 0 {
		return 0, errors.Errorf("horizon inválido: %q", raw)
	}

	return horizon, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	return utils.ParseDate(raw)
}

func parseList(values []string) []string {
	var list []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("panels: falha ao codificar resposta")
	}
}
