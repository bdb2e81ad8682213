package record

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/utils/identity"
)

// SQLRepository backs the record set with a relational table. The DDL and
// placeholders stay within the common subset of MySQL and SQLite so the
// driver is a pure configuration choice.
type SQLRepository struct {
	conn *sqlx.DB
}

func NewSQLRepository(conn *sqlx.DB) *SQLRepository {
	return &SQLRepository{conn: conn}
}

const createTableQuery = `CREATE TABLE IF NOT EXISTS rsvp (
	id            VARCHAR(64) PRIMARY KEY,
	created_at    VARCHAR(32) NOT NULL,
	updated_at    VARCHAR(32) NOT NULL,
	code          VARCHAR(64) NOT NULL,
	name          VARCHAR(255) NOT NULL,
	email         VARCHAR(255) NOT NULL DEFAULT '',
	phone         VARCHAR(64) NOT NULL DEFAULT '',
	norm_email    VARCHAR(255) NOT NULL DEFAULT '',
	norm_phone    VARCHAR(64) NOT NULL DEFAULT '',
	attending     TINYINT NOT NULL DEFAULT 0,
	adult_partner TINYINT NOT NULL DEFAULT 0,
	kids_0_3      INT NOT NULL DEFAULT 0,
	kids_4_10     INT NOT NULL DEFAULT 0,
	kids_11_17    INT NOT NULL DEFAULT 0,
	kids_total    INT NOT NULL DEFAULT 0,
	message       TEXT
)`

// InitSchema creates the rsvp table when absent.
func (r *SQLRepository) InitSchema(ctx context.Context) error {
	_, err := r.conn.ExecContext(ctx, createTableQuery)
	return err
}

type rsvpRow struct {
	ID           string `db:"id"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	NormEmail    string `db:"norm_email"`
	NormPhone    string `db:"norm_phone"`
	Attending    bool   `db:"attending"`
	AdultPartner bool   `db:"adult_partner"`
	Kids0to3     int    `db:"kids_0_3"`
	Kids4to10    int    `db:"kids_4_10"`
	Kids11to17   int    `db:"kids_11_17"`
	KidsTotal    int    `db:"kids_total"`
	Message      string `db:"message"`
}

const selectColumns = `id, created_at, updated_at, code, name, email, phone,
	norm_email, norm_phone, attending, adult_partner,
	kids_0_3, kids_4_10, kids_11_17, kids_total, message`

const (
	readAllQuery = `SELECT ` + selectColumns + ` FROM rsvp ORDER BY updated_at DESC`

	findMatchQuery = `SELECT ` + selectColumns + ` FROM rsvp
		WHERE (? != '' AND norm_email = ?) OR (? != '' AND norm_phone = ?)
		LIMIT 1`

	existsQuery = `SELECT COUNT(1) FROM rsvp WHERE id = ?`

	updateQuery = `UPDATE rsvp SET updated_at = ?, code = ?, name = ?, email = ?,
		phone = ?, norm_email = ?, norm_phone = ?, attending = ?, adult_partner = ?,
		kids_0_3 = ?, kids_4_10 = ?, kids_11_17 = ?, kids_total = ?, message = ?
		WHERE id = ?`

	insertQuery = `INSERT INTO rsvp (` + selectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

func (r *SQLRepository) ReadAll(ctx context.Context) ([]model.Record, error) {
	var rows []rsvpRow
	if err := r.conn.SelectContext(ctx, &rows, readAllQuery); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToModel(row))
	}
	return records, nil
}

func (r *SQLRepository) FindMatch(ctx context.Context, email, phone string) (*model.Record, error) {
	var row rsvpRow
	err := r.conn.QueryRowxContext(ctx, findMatchQuery, email, email, phone, phone).StructScan(&row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rec := rowToModel(row)
	return &rec, nil
}

// Upsert updates in place by id, inserting when the id is absent. The
// existence check and the write run in one transaction so a concurrent
// writer cannot slip between them. The branch is driven by an explicit
// SELECT, not affected-row counts: MySQL reports rows changed rather than
// rows matched, so a resubmission with identical values would look like a
// missing row and collide on the primary key.
func (r *SQLRepository) Upsert(ctx context.Context, rec model.Record) error {
	row := modelToRow(rec)

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err := tx.GetContext(ctx, &count, existsQuery, row.ID); err != nil {
		return err
	}

	if count > 0 {
		_, err = tx.ExecContext(ctx, updateQuery,
			row.UpdatedAt, row.Code, row.Name, row.Email, row.Phone,
			row.NormEmail, row.NormPhone, row.Attending, row.AdultPartner,
			row.Kids0to3, row.Kids4to10, row.Kids11to17, row.KidsTotal, row.Message,
			row.ID)
	} else {
		_, err = tx.ExecContext(ctx, insertQuery,
			row.ID, row.CreatedAt, row.UpdatedAt, row.Code, row.Name,
			row.Email, row.Phone, row.NormEmail, row.NormPhone,
			row.Attending, row.AdultPartner,
			row.Kids0to3, row.Kids4to10, row.Kids11to17, row.KidsTotal, row.Message)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func modelToRow(rec model.Record) rsvpRow {
	return rsvpRow{
		ID:           rec.ID,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		Code:         rec.Code,
		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		NormEmail:    identity.NormalizeEmail(rec.Email),
		NormPhone:    identity.NormalizePhone(rec.Phone),
		Attending:    rec.Attending,
		AdultPartner: rec.AdultPartner,
		Kids0to3:     rec.Children.AgeRanges.Age0to3,
		Kids4to10:    rec.Children.AgeRanges.Age4to10,
		Kids11to17:   rec.Children.AgeRanges.Age11to17,
		KidsTotal:    rec.Children.Count,
		Message:      rec.Message,
	}
}

func rowToModel(row rsvpRow) model.Record {
	return model.Record{
		ID:           row.ID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Code:         row.Code,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		Attending:    row.Attending,
		AdultPartner: row.AdultPartner,
		Children: model.Children{
			Count: row.KidsTotal,
			AgeRanges: model.AgeRanges{
				Age0to3:   row.Kids0to3,
				Age4to10:  row.Kids4to10,
				Age11to17: row.Kids11to17,
			},
		},
		Message: row.Message,
	}
}
