package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fncomp/internal/diag"
	"fncomp/internal/source"
	"fncomp/internal/trace"
)

// ListFiles возвращает отсортированный список *.rs файлов в директории.
// Hidden directories, `target` and files produced by `--write` are skipped.
func ListFiles(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "target") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".rs") {
			return nil
		}
		if opts.WriteSuffix != "" && strings.HasSuffix(path, opts.WriteSuffix) {
			return nil
		}
		if opts.Exclude != nil && opts.Exclude(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every .rs file under dir in parallel. Results follow
// the sorted file order. I/O failures become diagnostics on the file's
// result; the returned error is set only for walk failures or cancellation.
func ExpandDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	opts = opts.withDefaults()
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "expand-dir:"+dir)
	defer span.End("")

	files, err := ListFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем всё заранее
	loadIdx := opts.Timer.Begin("load")
	_, loadSpan := trace.Start(ctx, trace.ScopePass, "load")
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	loadSpan.End("")
	opts.Timer.End(loadIdx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Result, len(files))

	expandIdx := opts.Timer.Begin("expand-files")
	passCtx, passSpan := trace.Start(ctx, trace.ScopePass, "expand")
	g, gctx := errgroup.WithContext(passCtx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.NoSpan, "failed to load file: "+loadErr.Error()))
				results[i] = &Result{Path: path, Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusError, Err: loadErr, Elapsed: time.Since(start)})
				return nil
			}

			res := expandFile(gctx, fileSet.Get(fileIDs[path]), opts)
			if opts.WriteSuffix != "" && res.Changed {
				emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking, Items: len(res.Sites)})
				if err := writeResult(res, opts.WriteSuffix); err != nil {
					res.Bag.Add(diag.NewError(diag.IOWriteError, source.NoSpan, err.Error()))
				}
			}
			results[i] = res

			status := StatusDone
			if res.Failed() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageExpand, Status: status, Items: len(res.Sites), Elapsed: time.Since(start)})
			return nil
		})
	}
	err = g.Wait()
	passSpan.End("")
	opts.Timer.End(expandIdx, "")
	if err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}
