package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/telemed/telemed/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const rowCols = `a.id, a.patient_id, a.doctor_id, a.datetime, a.reason, a.status, a.created_at,
	p.first_name || ' ' || p.last_name AS patient_name,
	d.first_name || ' ' || d.last_name AS doctor_name`

const rowJoins = ` FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN doctors d ON d.id = a.doctor_id`

func scanRow(row pgx.Row) (*Row, error) {
	var ar Row
	err := row.Scan(&ar.ID, &ar.PatientID, &ar.DoctorID, &ar.Datetime,
		&ar.Reason, &ar.Status, &ar.CreatedAt, &ar.PatientName, &ar.DoctorName)
	return &ar, err
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error) {
	query := `SELECT ` + rowCols + rowJoins + ` WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM appointments a WHERE 1=1`
	var args []interface{}
	idx := 1

	if v, ok := params["patient"]; ok && v != "" {
		clause := fmt.Sprintf(` AND a.patient_id = $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, v)
		idx++
	}
	if v, ok := params["doctor"]; ok && v != "" {
		clause := fmt.Sprintf(` AND a.doctor_id = $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, v)
		idx++
	}
	if v, ok := params["status"]; ok && v != "" {
		clause := fmt.Sprintf(` AND a.status = $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, v)
		idx++
	}
	if from, ok := params["from"]; ok && from != "" {
		clause := fmt.Sprintf(` AND a.datetime >= $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, from)
		idx++
	}
	if to, ok := params["to"]; ok && to != "" {
		clause := fmt.Sprintf(` AND a.datetime <= $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, to)
		idx++
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY a.datetime ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Row
	for rows.Next() {
		ar, err := scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, ar)
	}
	return items, total, nil
}

func (r *repoPG) ListToday(ctx context.Context, now time.Time) ([]*Row, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return r.queryRows(ctx, `SELECT `+rowCols+rowJoins+`
		WHERE a.datetime >= $1 AND a.datetime < $2 ORDER BY a.datetime ASC`, dayStart, dayEnd)
}

func (r *repoPG) ListUpcomingByPatient(ctx context.Context, patientID uuid.UUID, now time.Time) ([]*Row, error) {
	return r.queryRows(ctx, `SELECT `+rowCols+rowJoins+`
		WHERE a.patient_id = $1 AND a.datetime >= $2 AND a.status = 'scheduled'
		ORDER BY a.datetime ASC`, patientID, now)
}

func (r *repoPG) ListUpcomingByDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) ([]*Row, error) {
	return r.queryRows(ctx, `SELECT `+rowCols+rowJoins+`
		WHERE a.doctor_id = $1 AND a.datetime >= $2 AND a.status = 'scheduled'
		ORDER BY a.datetime ASC`, doctorID, now)
}

func (r *repoPG) queryRows(ctx context.Context, query string, args ...interface{}) ([]*Row, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Row
	for rows.Next() {
		ar, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ar)
	}
	return items, nil
}
