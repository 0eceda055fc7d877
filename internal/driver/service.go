// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package driver

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"

	"github.com/routeconv/routeconv/internal/core"
	"github.com/routeconv/routeconv/internal/diff"
	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/logger"
	"github.com/routeconv/routeconv/internal/progress"
	"github.com/routeconv/routeconv/internal/rewrite"
)

// inlineName labels diffs of inline source
const inlineName = "source.js"

// Service implements core.Converter over files on the local disk
type Service struct {
	defaultFile string
}

// NewService creates a converter whose empty-path requests use defaultFile
func NewService(defaultFile string) *Service {
	return &Service{defaultFile: defaultFile}
}

// DefaultFile returns the configured target file
func (s *Service) DefaultFile() string {
	return s.defaultFile
}

func (s *Service) resolve(path string) string {
	if path == "" {
		return s.defaultFile
	}
	return path
}

// Report counts routes in the file at path
func (s *Service) Report(ctx context.Context, path string) (*core.ReportResult, error) {
	path = s.resolve(path)

	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCancelled, "report cancelled")
	}

	return core.NewReportResult(path, progress.Count(source)), nil
}

// Rewrite applies the rewrite rules to a file or to inline source.
// Files are only modified when opts.Write is set and a rule matched.
func (s *Service) Rewrite(ctx context.Context, opts core.RewriteOptions) (*core.RewriteResult, error) {
	var (
		source string
		file   string
		err    error
	)

	if opts.Source != "" {
		if opts.Write {
			return nil, apperrors.InvalidInput("write requires a file path, not inline source")
		}
		source = opts.Source
	} else {
		file = s.resolve(opts.Path)
		if source, err = ReadSource(file); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCancelled, "rewrite cancelled")
	}

	applied := rewrite.Apply(source)
	result := &core.RewriteResult{
		File:          file,
		Changed:       applied.Changed(),
		Substitutions: applied.Substitutions(),
		Hits:          applied.Hits,
		Review:        rewrite.ManualReview(applied.Rewritten),
		Before:        core.NewReportResult(file, progress.Count(applied.Original)),
		After:         core.NewReportResult(file, progress.Count(applied.Rewritten)),
	}

	_, log := logger.WithFields(ctx, map[string]interface{}{
		"file":          file,
		"substitutions": result.Substitutions,
		"review":        len(result.Review),
	})

	if opts.Diff {
		name := inlineName
		if file != "" {
			name = filepath.Base(file)
		}
		if result.Diff, err = diff.Unified(name, applied.Original, applied.Rewritten); err != nil {
			return nil, apperrors.OperationFailed("diff", err)
		}
	} else if !opts.Write {
		result.Output = applied.Rewritten
	}

	if opts.Write && applied.Changed() {
		if err := WriteSource(file, applied.Rewritten); err != nil {
			return nil, err
		}
		result.Written = true
		log.Info().Msg("Route file rewritten")
	} else {
		log.Debug().Bool("changed", applied.Changed()).Msg("Rewrite computed")
	}

	return result, nil
}

// WriteSource atomically replaces the file at path with content, keeping its permissions
func WriteSource(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	out, err := atomicfile.New(path, mode)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeWriteError, "failed to open route file for writing").
			WithContext("path", path)
	}
	defer out.Cancel()

	if _, err := io.WriteString(out, content); err != nil {
		return apperrors.Wrap(err, apperrors.CodeWriteError, "failed to write route file").
			WithContext("path", path)
	}
	if err := out.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeWriteError, "failed to replace route file").
			WithContext("path", path)
	}
	return nil
}

var _ core.Converter = (*Service)(nil)
