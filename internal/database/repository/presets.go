package repository

import (
	"context"
	"database/sql"
)

// PresetRepo handles saved filter presets.
type PresetRepo struct {
	db *sql.DB
}

func NewPresetRepo(db *sql.DB) *PresetRepo {
	return &PresetRepo{db: db}
}

// Upsert saves a preset; an existing preset with the same name is replaced.
func (r *PresetRepo) Upsert(ctx context.Context, p Preset) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO filter_presets(id, name, customer_query, milestone_query)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
	 customer_query=excluded.customer_query,
	 milestone_query=excluded.milestone_query,
	 updated_at=CURRENT_TIMESTAMP;
	`, p.ID, p.Name, p.CustomerQuery, p.MilestoneQuery)
	return err
}

func (r *PresetRepo) List(ctx context.Context) ([]Preset, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, customer_query, milestone_query, created_at, updated_at
	FROM filter_presets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.CustomerQuery, &p.MilestoneQuery, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns the preset by name, or sql.ErrNoRows.
func (r *PresetRepo) Get(ctx context.Context, name string) (Preset, error) {
	var p Preset
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, customer_query, milestone_query, created_at, updated_at
	FROM filter_presets WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.CustomerQuery, &p.MilestoneQuery, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PresetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM filter_presets WHERE id = ?`, id)
	return err
}
