package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
)

// CheckManyResult содержит результат проверки одного файла.
type CheckManyResult struct {
	Path  string       // путь, как его передал вызывающий
	Check *CheckResult // nil при ошибке чтения файла
	Err   error        // ошибка I/O или составная diag.Error
}

// Diags возвращает составную diag.Error, если она есть.
func (r *CheckManyResult) Diags() (*diag.Error, bool) {
	var de *diag.Error
	if errors.As(r.Err, &de) {
		return de, true
	}
	return nil, false
}

// listEmberFiles возвращает отсортированный список всех *.em файлов в директории
func listEmberFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".em") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckMany проверяет файлы параллельно.
// Каждый файл получает собственный FileSet, Builder и Bag, поэтому
// горутины не делят изменяемое состояние. Диагностики файла попадают
// в CheckManyResult.Err, а не в ошибку errgroup: проваленный typecheck
// одного файла не отменяет проверку остальных.
func CheckMany(ctx context.Context, paths []string, maxDiagnostics, jobs int) ([]CheckManyResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]CheckManyResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			checked, err := Check(path, maxDiagnostics)
			results[i] = CheckManyResult{Path: path, Check: checked, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// CheckDir проверяет все *.em файлы в директории параллельно
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]CheckManyResult, error) {
	files, err := listEmberFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckMany(ctx, files, maxDiagnostics, jobs)
}
