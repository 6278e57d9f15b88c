package dataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXLoader lê o dataset de uma planilha Excel. Quando sheet é vazio usa
// a primeira aba do arquivo.
type XLSXLoader struct {
	path  string
	sheet string
}

func NewXLSXLoader(path, sheet string) *XLSXLoader {
	return &XLSXLoader{path: path, sheet: sheet}
}

func (l *XLSXLoader) Load(ctx context.Context) ([]*domain.SalesRecord, error) {
	file, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir %s", l.path)
	}
	defer file.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler aba %q de %s", sheet, l.path)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("aba %q de %s está vazia", sheet, l.path)
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, errors.Wrapf(err, "cabeçalho inválido em %s", l.path)
	}

	var records []*domain.SalesRecord

	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if isEmptyRow(row) {
			continue
		}

		record, err := parseRecord(index, row, i+2)
		if err != nil {
			return nil, errors.Wrapf(err, "registro inválido em %s", l.path)
		}

		records = append(records, record)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
