// Package migrations applies the embedded PostgreSQL schema.
//
// Files are named NNNNNN_description.up.sql and applied once each in
// version order. Applied versions are recorded in schema_migrations.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"
)

//go:embed sql/*.up.sql
var files embed.FS

const dir = "sql"

type migration struct {
	version int
	name    string
	path    string
}

// Apply runs every embedded migration not yet recorded on the master.
// It returns the number of migrations applied.
func Apply(ctx context.Context, db *dbpg.DB) (int, error) {
	return apply(ctx, db, files, dir)
}

func apply(ctx context.Context, db *dbpg.DB, fsys fs.FS, root string) (int, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
    `); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}

	list, err := collect(fsys, root)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, m := range list {
		if applied[m.version] {
			continue
		}

		if err := run(ctx, db, fsys, m); err != nil {
			return n, fmt.Errorf("migration %06d_%s: %w", m.version, m.name, err)
		}

		zlog.Logger.Info().Int("version", m.version).Str("name", m.name).Msg("migration applied")
		n++
	}

	return n, nil
}

func appliedVersions(ctx context.Context, db *dbpg.DB) (map[int]bool, error) {
	rows, err := db.Master.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version;`)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		applied[v] = true
	}

	return applied, rows.Err()
}

func collect(fsys fs.FS, root string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var list []migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		version, name, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			continue
		}

		v, err := strconv.Atoi(version)
		if err != nil {
			continue
		}

		list = append(list, migration{
			version: v,
			name:    strings.TrimSuffix(name, ".up.sql"),
			path:    root + "/" + entry.Name(),
		})
	}

	sort.Slice(list, func(i, j int) bool { return list[i].version < list[j].version })

	return list, nil
}

func run(ctx context.Context, db *dbpg.DB, fsys fs.FS, m migration) error {
	body, err := fs.ReadFile(fsys, m.path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tx, err := db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1);`, m.version); err != nil {
		return fmt.Errorf("record version: %w", err)
	}

	return tx.Commit()
}
