package dashboard

import (
	"context"
	"time"

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

func (r *repoPG) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	var s Stats
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&s.Patients); err != nil {
		return nil, err
	}
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&s.Doctors); err != nil {
		return nil, err
	}
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM findings`).Scan(&s.Findings); err != nil {
		return nil, err
	}
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE datetime >= $1 AND datetime < $2`,
		dayStart, dayEnd).Scan(&s.AppointmentsToday); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) RecentFindings(ctx context.Context, limit int) ([]*RecentFinding, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT f.id, f.date, f.diagnosis,
			p.first_name || ' ' || p.last_name AS patient_name,
			d.first_name || ' ' || d.last_name AS doctor_name
		FROM findings f
		JOIN patients p ON p.id = f.patient_id
		JOIN doctors d ON d.id = f.doctor_id
		ORDER BY f.date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*RecentFinding
	for rows.Next() {
		var rf RecentFinding
		if err := rows.Scan(&rf.ID, &rf.Date, &rf.Diagnosis, &rf.PatientName, &rf.DoctorName); err != nil {
			return nil, err
		}
		items = append(items, &rf)
	}
	return items, nil
}
