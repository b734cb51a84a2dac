package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/hogpulse/internal/logger"
	"github.com/guttosm/hogpulse/internal/storage"
)

const (
	fileExt          = ".csv"
	defaultBatchSize = 5000
	maxParallelFiles = 7
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.ImportRepository {
	return storage.NewImportRepository(sqlx.NewDb(db, "postgres"))
}

// ProcessDirectory imports every CSV file found in dir.
//
// Parameters:
//   - dir: directory containing the .csv price files.
//   - db:  open *sql.DB (PostgreSQL).
//   - parallel: number of files imported at once; 0 means min(7, NumCPU).
//   - force: re-import files already recorded in import_log.
//
// Behavior:
//   - Files are processed in name order, at most maxParallelFiles at a time.
//   - A file listed in import_log is skipped unless force is set.
//   - Rows already tagged with the file name are deleted before loading it.
//   - Every row goes through the same checks as an API submission; one invalid
//     row fails the file.
//   - If any file returns error, cancels the rest and returns that error.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	repo := repoCtor(db)

	files, err := listFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileExt, dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("import start")

	maxParallel := resolveParallel(parallel)
	logger.L().Info().Int("max_parallel", maxParallel).Msg("import configured")

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			return importFile(gctx, repo, f, idx, len(files), force)
		})
	}

	return g.Wait()
}

func importFile(ctx context.Context, repo storage.ImportRepository, path string, idx, count int, force bool) error {
	start := time.Now()
	base := filepath.Base(path)
	log := logger.Ctx(ctx).With().Int("idx", idx+1).Int("total", count).Str("file", base).Logger()
	log.Info().Msg("file start")

	exists, err := repo.HasImport(ctx, base)
	if err != nil {
		log.Error().Err(err).Msg("check import log failed")
		return fmt.Errorf("file %s: check import log: %w", path, err)
	}
	if exists && !force {
		log.Info().Bool("skipped", true).Msg("already imported")
		return nil
	}
	// Clears a forced re-import as well as rows left by an earlier failed run.
	if err := repo.DeleteByImportBatch(ctx, base); err != nil {
		log.Error().Err(err).Msg("delete existing failed")
		return fmt.Errorf("file %s: delete existing: %w", path, err)
	}

	rows, err := parseAndPersistFile(ctx, path, repo, defaultBatchSize)
	if err != nil {
		log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		// An insert failure can leave earlier batches committed.
		if derr := repo.DeleteByImportBatch(context.WithoutCancel(ctx), base); derr != nil {
			log.Error().Err(derr).Msg("cleanup after failure failed")
		}
		return fmt.Errorf("file %s: %w", path, err)
	}
	if err := repo.UpsertImportLog(ctx, base, rows); err != nil {
		log.Error().Err(err).Msg("update import log failed")
		return fmt.Errorf("file %s: upsert import log: %w", path, err)
	}
	log.Info().Int("rows", rows).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
	return nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// resolveParallel defaults to min(7, NumCPU) and clamps explicit values to 1..7.
func resolveParallel(parallel int) int {
	if parallel > 0 {
		if parallel > maxParallelFiles {
			return maxParallelFiles
		}
		return parallel
	}
	if c := runtime.NumCPU(); c < maxParallelFiles {
		return c
	}
	return maxParallelFiles
}
