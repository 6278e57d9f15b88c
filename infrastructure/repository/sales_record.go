package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/forecast-venus-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

const salesRecordsTable = "sales_records sr"

type SalesRecordRepository interface {
	Load(ctx context.Context) ([]*domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn *postgres.Connection
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// Load devolve todos os registros de venda ordenados por data crescente
func (r *salesRecordRepository) Load(ctx context.Context) ([]*domain.SalesRecord, error) {
	recordsSQL, recordsArgs, err := squirrel.
		Select("sr.store, sr.client_type, sr.channel, sr.date, sr.quantity, sr.revenue, sr.profit").
		From(salesRecordsTable).
		OrderBy("sr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, recordsSQL, recordsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.SalesRecord

	for rows.Next() {
		record, err := r.deserializeSalesRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *salesRecordRepository) deserializeSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}

	var clientType sql.NullString

	if err := rows.Scan(
		&record.Store,
		&clientType,
		&record.Channel,
		&record.Date,
		&record.Quantity,
		&record.Revenue,
		&record.Profit,
	); err != nil {
		return nil, err
	}

	if clientType.Valid {
		record.ClientType = clientType.String
	}

	return record, nil
}
