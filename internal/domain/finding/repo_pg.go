package finding

import (
	"context"
	"errors"
	"fmt"

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

const findingCols = `id, patient_id, doctor_id, date, diagnosis, symptoms,
	therapy, notes, created_at, updated_at`

const rowCols = `f.id, f.patient_id, f.doctor_id, f.date, f.diagnosis, f.symptoms,
	f.therapy, f.notes, f.created_at, f.updated_at,
	p.first_name || ' ' || p.last_name AS patient_name,
	d.first_name || ' ' || d.last_name AS doctor_name`

const rowJoins = ` FROM findings f
	JOIN patients p ON p.id = f.patient_id
	JOIN doctors d ON d.id = f.doctor_id`

func (r *repoPG) scan(row pgx.Row) (*Finding, error) {
	var f Finding
	err := row.Scan(&f.ID, &f.PatientID, &f.DoctorID, &f.Date, &f.Diagnosis,
		&f.Symptoms, &f.Therapy, &f.Notes, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &f, err
}

func scanRow(row pgx.Row) (*Row, error) {
	var fr Row
	err := row.Scan(&fr.ID, &fr.PatientID, &fr.DoctorID, &fr.Date, &fr.Diagnosis,
		&fr.Symptoms, &fr.Therapy, &fr.Notes, &fr.CreatedAt, &fr.UpdatedAt,
		&fr.PatientName, &fr.DoctorName)
	return &fr, err
}

func (r *repoPG) Create(ctx context.Context, f *Finding) error {
	f.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO findings (id, patient_id, doctor_id, date, diagnosis, symptoms, therapy, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		f.ID, f.PatientID, f.DoctorID, f.Date, f.Diagnosis, f.Symptoms, f.Therapy, f.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Finding, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+findingCols+` FROM findings WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, f *Finding) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE findings SET patient_id=$2, doctor_id=$3, date=$4, diagnosis=$5,
			symptoms=$6, therapy=$7, notes=$8, updated_at=NOW()
		WHERE id = $1`,
		f.ID, f.PatientID, f.DoctorID, f.Date, f.Diagnosis, f.Symptoms, f.Therapy, f.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the finding row; owned lab results go with it through the
// store's ON DELETE CASCADE constraint.
func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM findings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error) {
	query := `SELECT ` + rowCols + rowJoins + ` WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM findings f WHERE 1=1`
	var args []interface{}
	idx := 1

	if q, ok := params["q"]; ok && q != "" {
		clause := fmt.Sprintf(` AND f.diagnosis ILIKE $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, "%"+q+"%")
		idx++
	}
	if from, ok := params["from"]; ok && from != "" {
		clause := fmt.Sprintf(` AND f.date >= $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, from)
		idx++
	}
	if to, ok := params["to"]; ok && to != "" {
		clause := fmt.Sprintf(` AND f.date <= $%d`, idx)
		query += clause
		countQuery += clause
		args = append(args, to)
		idx++
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY f.date DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	return r.queryRows(ctx, query, args, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Row, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM findings WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + rowCols + rowJoins + ` WHERE f.patient_id = $1 ORDER BY f.date DESC LIMIT $2 OFFSET $3`
	return r.queryRows(ctx, query, []interface{}{patientID, limit, offset}, total)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Row, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM findings WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + rowCols + rowJoins + ` WHERE f.doctor_id = $1 ORDER BY f.date DESC LIMIT $2 OFFSET $3`
	return r.queryRows(ctx, query, []interface{}{doctorID, limit, offset}, total)
}

func (r *repoPG) queryRows(ctx context.Context, query string, args []interface{}, total int) ([]*Row, int, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Row
	for rows.Next() {
		fr, err := scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, fr)
	}
	return items, total, nil
}

func (r *repoPG) AddLabResult(ctx context.Context, l *LabResult) error {
	l.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO lab_results (id, finding_id, test_name, value, unit, reference_range, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, l.FindingID, l.TestName, l.Value, l.Unit, l.ReferenceRange, l.Position)
	return err
}

func (r *repoPG) GetLabResults(ctx context.Context, findingID uuid.UUID) ([]*LabResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, finding_id, test_name, value, unit, reference_range, position
		FROM lab_results WHERE finding_id = $1 ORDER BY position ASC`, findingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		var l LabResult
		if err := rows.Scan(&l.ID, &l.FindingID, &l.TestName, &l.Value,
			&l.Unit, &l.ReferenceRange, &l.Position); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, nil
}

func (r *repoPG) DeleteLabResults(ctx context.Context, findingID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM lab_results WHERE finding_id = $1`, findingID)
	return err
}
