package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type DB struct {
	sqlDB *sql.DB
}

func NewDB(dbURL string) (*DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

func (db *DB) GetSQLDB() *sql.DB {
	return db.sqlDB
}

func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// SaveAssessment stores a calculation result as its JSON document and
// returns the persisted row. The result payload is written as jsonb, so the
// history endpoint can return it without re-encoding.
func (db *DB) SaveAssessment(ctx context.Context, userID, kind string, result any) (Assessment, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return Assessment{}, err
	}

	assessment := Assessment{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   kind,
		Result: payload,
	}

	err = db.GetSQLDB().QueryRowContext(
		ctx,
		`
			INSERT INTO assessments (id, user_id, kind, result)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at
		`,
		assessment.ID, assessment.UserID, assessment.Kind, string(payload),
	).Scan(&assessment.CreatedAt)
	if err != nil {
		return Assessment{}, err
	}

	return assessment, nil
}

// FindAssessmentsByUser returns a user's saved assessments, newest first.
func (db *DB) FindAssessmentsByUser(ctx context.Context, userID string, limit int) ([]Assessment, error) {
	var results []Assessment

	rows, err := db.GetSQLDB().QueryContext(
		ctx,
		`
			SELECT id, user_id, kind, result, created_at
			FROM assessments
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assessment Assessment

		err = rows.Scan(
			&assessment.ID,
			&assessment.UserID,
			&assessment.Kind,
			&assessment.Result,
			&assessment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		results = append(results, assessment)
	}

	return results, rows.Err()
}

type Assessment struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Kind      string          `db:"kind" json:"kind"`
	Result    json.RawMessage `db:"result" json:"result"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
