package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	resumeFile = "resume.yaml"
	skillsFile = "skills.yaml"
)

// FileRepository reads content from YAML files under a root directory:
//
//	<root>/<collection>/*.yaml   one item per file
//	<root>/resume.yaml
//	<root>/skills.yaml
type FileRepository struct {
	root     string
	validate *validator.Validate
}

// NewFileRepository creates a repository rooted at dir.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{
		root:     dir,
		validate: newValidator(),
	}
}

// Root returns the content directory.
func (r *FileRepository) Root() string {
	return r.root
}

// Items loads, validates and sorts all items of a collection.
// A missing collection directory yields an empty list.
func (r *FileRepository) Items(ctx context.Context, collection string) (items []model.ContentItem, err error) {
	if !model.IsCollection(collection) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.RecordContentLoad(collection, time.Since(start), status)
	}()

	dir := filepath.Join(r.root, collection)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("collection", collection).Str("dir", dir).Msg("Collection directory missing")
		return []model.ContentItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	items = make([]model.ContentItem, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		item, err := r.readItem(path, collection)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[item.Slug]; dup {
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateSlug, item.Slug, prev, path)
		}
		seen[item.Slug] = path
		items = append(items, item)
	}

	model.SortNewestFirst(items)
	return items, nil
}

func (r *FileRepository) readItem(path, collection string) (model.ContentItem, error) {
	var item model.ContentItem
	if err := decodeFile(path, &item); err != nil {
		return item, err
	}
	if item.Slug == "" {
		item.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if item.Collection == "" {
		item.Collection = collection
	}
	if item.Collection != collection {
		return item, &ValidationError{
			Source: path,
			Fields: []string{fmt.Sprintf("Collection %q does not match directory %q", item.Collection, collection)},
		}
	}
	if err := validateDocument(r.validate, path, item); err != nil {
		return item, err
	}
	return item, nil
}

// Resume loads resume.yaml.
func (r *FileRepository) Resume(ctx context.Context) (*model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(r.root, resumeFile)

	var resume model.Resume
	if err := decodeFile(path, &resume); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("resume: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := validateDocument(r.validate, path, resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// Skills loads skills.yaml. A missing file yields no groups.
func (r *FileRepository) Skills(ctx context.Context) ([]model.SkillGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(r.root, skillsFile)

	var groups []model.SkillGroup
	if err := decodeFile(path, &groups); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.SkillGroup{}, nil
		}
		return nil, err
	}
	for i := range groups {
		if err := validateDocument(r.validate, fmt.Sprintf("%s[%d]", path, i), groups[i]); err != nil {
			return nil, err
		}
	}
	if groups == nil {
		groups = []model.SkillGroup{}
	}
	return groups, nil
}

// decodeFile strictly decodes a YAML document, rejecting unknown fields.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return &ValidationError{Source: path, Fields: []string{"document is empty"}}
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func isYAML(name string) bool {
	return slices.Contains([]string{".yaml", ".yml"}, strings.ToLower(filepath.Ext(name)))
}
