package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("feature").ParseFS(templateFS, "templates/*.tmpl"))

// ErrFileExists is returned when a generated file would replace an existing one.
var ErrFileExists = errors.New("file already exists")

type generatedFile struct {
	template string
	path     string
}

func featureFiles(n Names) []generatedFile {
	return []generatedFile{
		{"model.go.tmpl", filepath.Join("internal/core/domain/model", n.Lower, n.Snake+".go")},
		{"port.go.tmpl", filepath.Join("internal/core/ports", n.Snake+"_repository.go")},
		{"dto.go.tmpl", filepath.Join("internal/adapters/out/postgres", n.Lower+"repo", "dto.go")},
		{"repository.go.tmpl", filepath.Join("internal/adapters/out/postgres", n.Lower+"repo", "repository.go")},
		{"create_command.go.tmpl", filepath.Join("internal/core/application/usecases/commands", "create_"+n.Snake+"_command.go")},
		{"create_command_handler.go.tmpl", filepath.Join("internal/core/application/usecases/commands", "create_"+n.Snake+"_command_handler.go")},
		{"list_query.go.tmpl", filepath.Join("internal/core/application/usecases/queries", "list_"+n.Plural+"_query.go")},
	}
}

// Scaffold renders every feature file below root and returns the written
// paths. Nothing is written when any target already exists.
func Scaffold(root string, n Names) ([]string, error) {
	files := featureFiles(n)

	rendered := make([][]byte, len(files))
	for i, f := range files {
		target := filepath.Join(root, f.path)
		if _, err := os.Stat(target); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrFileExists, f.path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, f.template, n); err != nil {
			return nil, fmt.Errorf("render %s: %w", f.template, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", f.path, err)
		}
		rendered[i] = src
	}

	written := make([]string, 0, len(files))
	for i, f := range files {
		target := filepath.Join(root, f.path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(target, rendered[i], 0o644); err != nil {
			return written, err
		}
		written = append(written, filepath.ToSlash(f.path))
	}
	return written, nil
}
