package cart

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresRepository stores each cart as one JSONB document keyed by the
// cart cookie id.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the carts table when it is missing.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS carts (
		cart_id TEXT PRIMARY KEY,
		lines JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

func (r *PostgresRepository) Get(cartID string) ([]Line, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT lines FROM carts WHERE cart_id = $1`, cartID).Scan(&raw)
	if err == sql.ErrNoRows {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return []Line{}, nil
	}
	var lines []Line
	if err := json.Unmarshal([]byte(raw.String), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *PostgresRepository) Save(cartID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	doc, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO carts (cart_id, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id) DO UPDATE SET lines = EXCLUDED.lines, updated_at = EXCLUDED.updated_at`,
		cartID, string(doc), time.Now().UTC())
	return err
}
