package forecasting

import "errors"

var (
	// ErrInsufficientHistory indica que a série tem menos observações do
	// que o mínimo exigido para invocar o modelo
	ErrInsufficientHistory = errors.New("histórico insuficiente para gerar projeção")

	// ErrInvalidHorizon indica um horizonte de projeção não positivo
	ErrInvalidHorizon = errors.New("horizonte de projeção deve ser positivo")
)
