package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// CSVLoader lê o dataset de um arquivo CSV delimitado por ponto e vírgula,
// o formato exportado pelo ERP das lojas.
type CSVLoader struct {
	path string
}

func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

func (l *CSVLoader) Load(ctx context.Context) ([]*domain.SalesRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir %s", l.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler cabeçalho de %s", l.path)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, errors.Wrapf(err, "cabeçalho inválido em %s", l.path)
	}

	var records []*domain.SalesRecord
	line := 1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "falha ao ler %s", l.path)
		}

		line++

		record, err := parseRecord(index, row, line)
		if err != nil {
			return nil, errors.Wrapf(err, "registro inválido em %s", l.path)
		}

		records = append(records, record)
	}

	return records, nil
}
