// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package montage persists imported channel sets in a local SQLite
// database so a digitized montage can be reused without re-importing the
// source file.
package montage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chanlocs/pkg/types"
)

const dbFile = "montages.db"

// Store manages the montage SQLite database.
type Store struct {
	db *sql.DB
}

// Info summarizes one stored montage.
type Info struct {
	Name       string
	SourceFile string
	Format     string
	Channels   int
	ImportedAt time.Time
}

// NewStore opens or creates the montage database under dir, creating the
// schema if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating montage directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS montages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			source_file TEXT,
			format TEXT,
			imported_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS channels (
			montage_id INTEGER NOT NULL REFERENCES montages(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			label TEXT,
			type TEXT,
			theta REAL, radius REAL,
			x REAL, y REAL, z REAL,
			sph_theta REAL, sph_phi REAL, sph_radius REAL,
			PRIMARY KEY (montage_id, idx)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_channels_montage ON channels(montage_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores a channel set under name, replacing any montage already
// stored under that name.
func (s *Store) Save(name, sourceFile, formatTag string, chans []types.Channel) error {
	if name == "" {
		return fmt.Errorf("montage name required: %w", types.ErrUsage)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM montages WHERE name = ?`, name); err != nil {
		return fmt.Errorf("replacing montage %q: %w", name, err)
	}

	res, err := tx.Exec(
		`INSERT INTO montages (name, source_file, format, imported_at) VALUES (?, ?, ?, ?)`,
		name, sourceFile, formatTag, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting montage %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading montage id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO channels
		(montage_id, idx, label, type, theta, radius, x, y, z, sph_theta, sph_phi, sph_radius)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing channel insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range chans {
		_, err := stmt.Exec(id, i+1, c.Label, c.Type,
			nullable(c.Theta), nullable(c.Radius),
			nullable(c.X), nullable(c.Y), nullable(c.Z),
			nullable(c.SphTheta), nullable(c.SphPhi), nullable(c.SphRadius))
		if err != nil {
			return fmt.Errorf("inserting channel %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// List returns summaries of all stored montages, newest first.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`
		SELECT m.name, m.source_file, m.format, m.imported_at, COUNT(c.idx)
		FROM montages m LEFT JOIN channels c ON c.montage_id = m.id
		GROUP BY m.id ORDER BY m.imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing montages: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var ts string
		if err := rows.Scan(&info.Name, &info.SourceFile, &info.Format, &ts, &info.Channels); err != nil {
			return nil, fmt.Errorf("scanning montage row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			info.ImportedAt = t
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Get loads the channel set stored under name.
func (s *Store) Get(name string) ([]types.Channel, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM montages WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("montage %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up montage %q: %w", name, err)
	}

	rows, err := s.db.Query(`
		SELECT label, type, theta, radius, x, y, z, sph_theta, sph_phi, sph_radius
		FROM channels WHERE montage_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("loading channels for %q: %w", name, err)
	}
	defer rows.Close()

	var chans []types.Channel
	for rows.Next() {
		var c types.Channel
		var theta, radius, x, y, z, sphTheta, sphPhi, sphRadius sql.NullFloat64
		if err := rows.Scan(&c.Label, &c.Type,
			&theta, &radius, &x, &y, &z, &sphTheta, &sphPhi, &sphRadius); err != nil {
			return nil, fmt.Errorf("scanning channel row: %w", err)
		}
		c.Theta = optional(theta)
		c.Radius = optional(radius)
		c.X = optional(x)
		c.Y = optional(y)
		c.Z = optional(z)
		c.SphTheta = optional(sphTheta)
		c.SphPhi = optional(sphPhi)
		c.SphRadius = optional(sphRadius)
		chans = append(chans, c)
	}
	return chans, rows.Err()
}

// Delete removes the montage stored under name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM montages WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting montage %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("montage %q not found", name)
	}
	return err
}

func nullable(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optional(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
