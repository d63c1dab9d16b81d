package collector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"StrategyScope/internal/model"
)

var documentExts = []string{".yaml", ".yml", ".json"}

// FileSource reads metric documents named <id>.yaml, <id>.yml or <id>.json from Dir.
type FileSource struct {
	Dir string
}

// NewFileSource creates a source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) FetchMetrics(ctx context.Context, strategyID string) (*model.StrategyMetrics, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if strategyID == "" || strategyID != filepath.Base(strategyID) || strings.HasPrefix(strategyID, ".") {
		return nil, "", fmt.Errorf("%w %q", ErrInvalidStrategyID, strategyID)
	}
	for _, ext := range documentExts {
		path := filepath.Join(s.Dir, strategyID+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
		doc, err := ReadDocument(data)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return &doc.Metrics, doc.displayName(strategyID), nil
	}
	return nil, "", fmt.Errorf("%s: %w", strategyID, ErrNotFound)
}

// ReadDocument validates raw document bytes against the schema and decodes them.
func ReadDocument(data []byte) (*Document, error) {
	if errs := ValidateDocument(data); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidMetrics, strings.Join(errs, "; "))
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode metric document: %w", err)
	}
	return &doc, nil
}
