package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"
	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/match"
)

// Store persists analysis reports and buyer profiles in a local sqlite file.
// The engine itself never touches it; commands load records from here and
// hand plain structs to the core.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite database at path and applies the base
// pragmas.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema creates the tables when they do not exist yet. Reports keep
// the full record as a JSON blob next to the scalar columns used for listing
// and filtering.
func (s *Store) EnsureSchema() error {
	const createReports = `
CREATE TABLE IF NOT EXISTS analysis_reports (
  id TEXT PRIMARY KEY,
  address TEXT NOT NULL,
  zone_type TEXT NOT NULL,
  development_score INTEGER NOT NULL,
  development_grade TEXT NOT NULL,
  total_price_eok REAL NOT NULL,
  report_json TEXT NOT NULL,
  generated_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(createReports); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_reports_address ON analysis_reports(address);`); err != nil {
		return err
	}

	const createProfiles = `
CREATE TABLE IF NOT EXISTS buyer_profiles (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  budget_min_eok REAL NOT NULL,
  budget_max_eok REAL NOT NULL,
  purpose TEXT NOT NULL,
  risk_tolerance TEXT NOT NULL,
  preferred_zones_json TEXT NOT NULL DEFAULT '[]',
  preferred_categories_json TEXT NOT NULL DEFAULT '[]',
  created_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(createProfiles); err != nil {
		return err
	}
	return nil
}

// SaveReport inserts one analysis record. Records are immutable, so an id
// collision is an error rather than an upsert.
func (s *Store) SaveReport(report *land.AnalysisResult) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}

	blob, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO analysis_reports
(id, address, zone_type, development_score, development_grade, total_price_eok, report_json, generated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		report.ID, report.Parcel.Address, report.Parcel.ZoneType,
		report.Development.Score, report.Development.Grade,
		report.Price.TotalEok, string(blob), report.GeneratedAt,
	)
	return err
}

// GetReport loads one analysis record by id.
func (s *Store) GetReport(id string) (*land.AnalysisResult, bool, error) {
	var blob string
	err := s.db.QueryRow(`SELECT report_json FROM analysis_reports WHERE id = ?`, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report land.AnalysisResult
	if err := json.Unmarshal([]byte(blob), &report); err != nil {
		return nil, false, fmt.Errorf("unmarshal report %s: %w", id, err)
	}
	return &report, true, nil
}

// ListReports returns stored analyses, newest first.
func (s *Store) ListReports(limit int) (*land.Reports, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
SELECT report_json FROM analysis_reports
ORDER BY generated_at DESC, id
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := &land.Reports{}
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var report land.AnalysisResult
		if err := json.Unmarshal([]byte(blob), &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports.Items = append(reports.Items, &report)
	}
	return reports, rows.Err()
}

// SaveProfile inserts a buyer profile, assigning an id when missing.
// Profiles are append-only; duplicate names are rejected by the unique
// constraint.
func (s *Store) SaveProfile(profile match.BuyerProfile) (match.BuyerProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	zones, _ := json.Marshal(profile.PreferredZones)
	categories, _ := json.Marshal(profile.PreferredCategories)

	_, err := s.db.Exec(`
INSERT INTO buyer_profiles
(id, name, budget_min_eok, budget_max_eok, purpose, risk_tolerance, preferred_zones_json, preferred_categories_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		profile.ID, profile.Name, profile.BudgetMinEok, profile.BudgetMaxEok,
		string(profile.Purpose), string(profile.RiskTolerance),
		string(zones), string(categories), time.Now().UTC(),
	)
	return profile, err
}

// GetProfile loads a buyer profile by name.
func (s *Store) GetProfile(name string) (match.BuyerProfile, bool, error) {
	var p match.BuyerProfile
	var purpose, tolerance, zonesJSON, categoriesJSON string

	err := s.db.QueryRow(`
SELECT id, name, budget_min_eok, budget_max_eok, purpose, risk_tolerance, preferred_zones_json, preferred_categories_json
FROM buyer_profiles WHERE name = ?
`, name).Scan(
		&p.ID, &p.Name, &p.BudgetMinEok, &p.BudgetMaxEok,
		&purpose, &tolerance, &zonesJSON, &categoriesJSON,
	)
	if err == sql.ErrNoRows {
		return match.BuyerProfile{}, false, nil
	}
	if err != nil {
		return match.BuyerProfile{}, false, err
	}

	p.Purpose = match.Purpose(purpose)
	p.RiskTolerance = match.RiskTolerance(tolerance)
	_ = json.Unmarshal([]byte(zonesJSON), &p.PreferredZones)
	_ = json.Unmarshal([]byte(categoriesJSON), &p.PreferredCategories)

	return p, true, nil
}

// ListProfiles returns all buyer profiles ordered by name.
func (s *Store) ListProfiles() ([]match.BuyerProfile, error) {
	rows, err := s.db.Query(`
SELECT id, name, budget_min_eok, budget_max_eok, purpose, risk_tolerance, preferred_zones_json, preferred_categories_json
FROM buyer_profiles ORDER BY name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []match.BuyerProfile
	for rows.Next() {
		var p match.BuyerProfile
		var purpose, tolerance, zonesJSON, categoriesJSON string
		if err := rows.Scan(
			&p.ID, &p.Name, &p.BudgetMinEok, &p.BudgetMaxEok,
			&purpose, &tolerance, &zonesJSON, &categoriesJSON,
		); err != nil {
			return nil, err
		}
		p.Purpose = match.Purpose(purpose)
		p.RiskTolerance = match.RiskTolerance(tolerance)
		_ = json.Unmarshal([]byte(zonesJSON), &p.PreferredZones)
		_ = json.Unmarshal([]byte(categoriesJSON), &p.PreferredCategories)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
