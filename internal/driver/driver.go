// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package driver reads the target route file and produces the conversion report
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/logger"
	"github.com/routeconv/routeconv/internal/progress"
)

// Banner is printed ahead of every report
var Banner = "PostgreSQL Route Conversion Script\n" +
	strings.Repeat("=", 60) + "\n" +
	"\n" +
	"This script helps convert remaining SQLite routes to PostgreSQL.\n" +
	"Note: Complex routes with transactions need manual review!\n" +
	"\n"

// ReadSource reads the whole route file.
// A missing file yields a not-found AppError.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.NotFound(path)
		}
		return "", apperrors.Wrap(err, apperrors.CodeReadError, "failed to read route file").
			WithContext("path", path)
	}
	return string(data), nil
}

// Run prints the banner and the progress report for the file at path.
// The rewrite rules are not applied.
func Run(ctx context.Context, path string, stdout io.Writer) error {
	ctx, log := logger.WithFile(ctx, path)

	if _, err := io.WriteString(stdout, Banner); err != nil {
		return err
	}

	if err := Report(ctx, path, stdout); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			fmt.Fprintf(stdout, "ERROR: %s not found!\n", filepath.Base(path))
		case apperrors.Is(err, apperrors.CodeReadError):
			fmt.Fprintf(stdout, "ERROR: %v\n", err)
		}
		log.Error().Err(err).Msg("Cannot report on route file")
		return err
	}
	return nil
}

// Report writes the progress report for the file at path, without the banner
func Report(ctx context.Context, path string, w io.Writer) error {
	log := logger.FromContext(ctx)

	source, err := ReadSource(path)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCancelled, "report cancelled")
	}

	p := progress.Count(source)
	if p.Total == 0 {
		log.Warn().Msg("No routes found; progress percentage is undefined")
	}
	log.Debug().
		Int("total", p.Total).
		Int("converted", p.Converted).
		Msg("Routes counted")

	return progress.WriteReport(w, p)
}
