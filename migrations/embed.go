package migrations

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"bookit/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var files embed.FS

const seedSuffix = "_seed_data.sql"

// Files returns the embedded migration names in apply order.
func Files(withSeed bool) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, errs.Wrap(err, "read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		if !withSeed && strings.HasSuffix(e.Name(), seedSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Apply executes every embedded script in order. Scripts are idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool, withSeed bool) error {
	names, err := Files(withSeed)
	if err != nil {
		return err
	}

	for _, name := range names {
		sqlContent, err := files.ReadFile(name)
		if err != nil {
			return errs.Wrap(err, "read migration "+name)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return errs.Wrap(err, "execute migration "+name)
		}
		slog.Info("migration applied", "file", name)
	}

	return nil
}
