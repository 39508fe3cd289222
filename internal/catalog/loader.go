package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/joyjoykids/feedback-backend/internal/domain"
	"github.com/joyjoykids/feedback-backend/internal/logger"
)

// catalogFile is the on-disk shape of one lesson catalog.
type catalogFile struct {
	Month      string                      `json:"month" yaml:"month"`
	Lesson     string                      `json:"lesson" yaml:"lesson"`
	Activities []domain.ActivityDefinition `json:"activities" yaml:"activities"`
}

// Loader resolves (month, lesson) keys to catalogs under a base directory.
// Catalogs are loaded once and cached for the process lifetime; a missing
// or undecodable resource yields the empty catalog, never an error.
type Loader struct {
	log *logger.Logger
	dir string

	mu    sync.RWMutex
	cache map[string]*Catalog
}

func NewLoader(dir string, log *logger.Logger) *Loader {
	return &Loader{
		log:   log.With("component", "CatalogLoader"),
		dir:   dir,
		cache: make(map[string]*Catalog),
	}
}

// Load returns the catalog for the given month/lesson pair.
func (l *Loader) Load(month, lesson string) *Catalog {
	month = sanitizeKey(month)
	lesson = sanitizeKey(lesson)
	if month == "" || lesson == "" {
		return Empty()
	}
	key := month + "_" + lesson

	l.mu.RLock()
	if c, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return c
	}
	l.mu.RUnlock()

	c := l.read(key)

	l.mu.Lock()
	l.cache[key] = c
	l.mu.Unlock()
	return c
}

func (l *Loader) read(key string) *Catalog {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(l.dir, key+ext)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var f catalogFile
		if ext == ".json" {
			err = json.Unmarshal(raw, &f)
		} else {
			err = yaml.Unmarshal(raw, &f)
		}
		if err != nil {
			l.log.Warn("Catalog file could not be decoded", "path", path, "error", err)
			return Empty()
		}
		c := New(f.Activities)
		l.log.Info("Catalog loaded", "path", path, "activities", c.Len())
		return c
	}
	l.log.Warn("Catalog resource not found", "dir", l.dir, "key", key)
	return Empty()
}

// sanitizeKey keeps month/lesson values usable as a filename fragment.
func sanitizeKey(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
