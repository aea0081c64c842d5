package libraries

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/opacgo/opacapp/internal/model"
)

//go:embed data/*.json
var assets embed.FS

// Registry holds all library definitions the app knows about
type Registry struct {
	libs []*model.Library
	byID map[string]*model.Library
}

// Load parses the embedded library definitions
func Load() (*Registry, error) {
	r := &Registry{byID: make(map[string]*model.Library)}

	entries, err := assets.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded registry: %w", err)
	}
	for _, entry := range entries {
		data, err := assets.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		if err := r.add(data); err != nil {
			return nil, fmt.Errorf("invalid library definition %s: %w", entry.Name(), err)
		}
	}

	r.sortLibs()
	return r, nil
}

// LoadWithExtra parses the embedded definitions plus any *.json files in dir.
// Extra definitions override embedded ones with the same ID.
func LoadWithExtra(dir string) (*Registry, error) {
	r, err := Load()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return r, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := r.add(data); err != nil {
			return nil, fmt.Errorf("invalid library definition %s: %w", path, err)
		}
	}

	r.sortLibs()
	return r, nil
}

func (r *Registry) add(data []byte) error {
	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return err
	}
	if lib.ID == "" {
		return fmt.Errorf("library definition has no id")
	}

	if existing, ok := r.byID[lib.ID]; ok {
		*existing = lib
		return nil
	}
	r.libs = append(r.libs, &lib)
	r.byID[lib.ID] = &lib
	return nil
}

func (r *Registry) sortLibs() {
	sort.Slice(r.libs, func(i, j int) bool {
		if r.libs[i].City != r.libs[j].City {
			return r.libs[i].City < r.libs[j].City
		}
		return r.libs[i].Name < r.libs[j].Name
	})
}

// All returns every library, sorted by city then name
func (r *Registry) All() []*model.Library {
	return r.libs
}

// Get returns the library with the given ID
func (r *Registry) Get(id string) (*model.Library, bool) {
	lib, ok := r.byID[id]
	return lib, ok
}

// Filter returns libraries fuzzy-matching the query, best matches first.
// An empty query returns all libraries.
func (r *Registry) Filter(query string) []*model.Library {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.libs
	}

	targets := make([]string, len(r.libs))
	for i, lib := range r.libs {
		targets[i] = lib.City + " " + lib.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Sort(ranks)

	matched := make([]*model.Library, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, r.libs[rank.OriginalIndex])
	}
	return matched
}
