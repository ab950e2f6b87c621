// Package file persists query results next to each other as
// {account}_{command}.txt and {account}_{command}.json, overwriting any
// previous pair for the same command.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/bnema/instagram-query-cli/internal/ports"
)

const (
	outputDirMode  = 0o755
	outputFileMode = 0o644
)

type Sink struct {
	dir string
}

var _ ports.ResultSink = (*Sink)(nil)

func NewSink(dir string) *Sink {
	if dir == "" {
		dir = "."
	}

	return &Sink{dir: filepath.Clean(dir)}
}

func (s *Sink) WriteText(result domain.Result) (string, error) {
	return s.write(result.FileStem()+".txt", []byte(result.Text()))
}

func (s *Sink) WriteJSON(result domain.Result) (string, error) {
	data, err := result.JSON()
	if err != nil {
		return "", err
	}

	return s.write(result.FileStem()+".json", data)
}

func (s *Sink) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, outputDirMode); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return "", fmt.Errorf("write output file %q: %w", name, err)
	}

	return path, nil
}
