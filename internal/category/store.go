package category

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finsight-dev/finsight/internal/model"
)

// Category is a named bucket of lowercase keyword triggers.
type Category struct {
	Name     string
	Keywords []string
}

// PersistenceError reports a failed flush of the category document. The
// in-memory mutation that triggered the flush is kept; callers surface an
// unsaved-changes warning instead of rolling back.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving categories to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store owns the mapping from category name to keyword list. Iteration order
// is insertion order, which the categorizer relies on for deterministic
// first-match labeling, so order survives save/load round trips.
type Store struct {
	path     string
	order    []string
	keywords map[string][]string
}

// NewStore creates a Store over the given categories, persisted at path.
// The fallback category is appended if absent.
func NewStore(path string, categories []Category) *Store {
	s := &Store{path: path, keywords: make(map[string][]string, len(categories))}
	for _, c := range categories {
		if _, ok := s.keywords[c.Name]; ok {
			continue
		}
		s.order = append(s.order, c.Name)
		s.keywords[c.Name] = append([]string(nil), c.Keywords...)
	}
	if _, ok := s.keywords[model.Uncategorized]; !ok {
		s.order = append(s.order, model.Uncategorized)
		s.keywords[model.Uncategorized] = nil
	}
	return s
}

// Load reads the persisted category document at path. A missing file or
// malformed content falls back to the built-in defaults; Load never fails
// the caller.
func Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewStore(path, DefaultCategories())
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return NewStore(path, DefaultCategories())
	}
	return NewStore(path, doc.categories)
}

// Path returns the location of the persisted category document.
func (s *Store) Path() string { return s.path }

// Names returns all category names in insertion order, fallback included.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []Category {
	out := make([]Category, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Category{
			Name:     name,
			Keywords: append([]string(nil), s.keywords[name]...),
		})
	}
	return out
}

// Keywords returns the keyword list for a category.
func (s *Store) Keywords(name string) ([]string, bool) {
	kws, ok := s.keywords[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), kws...), true
}

// Exists reports whether a category name is present.
func (s *Store) Exists(name string) bool {
	_, ok := s.keywords[name]
	return ok
}

// AddCategory inserts a new category with an empty keyword list and flushes.
// Fails without mutating the store if the name is empty or already present.
func (s *Store) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	if _, ok := s.keywords[name]; ok {
		return fmt.Errorf("category %q already exists", name)
	}

	s.order = append(s.order, name)
	s.keywords[name] = nil
	return s.Save()
}

// AddKeyword appends a keyword to a category and flushes. The keyword is
// lowercased and trimmed first. Fails without mutating the store if the
// category is unknown, the keyword is empty, or the keyword is already
// present in the category.
func (s *Store) AddKeyword(category, keyword string) error {
	kws, ok := s.keywords[category]
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}

	keyword = Normalize(keyword)
	if keyword == "" {
		return fmt.Errorf("keyword is empty")
	}
	for _, existing := range kws {
		if existing == keyword {
			return fmt.Errorf("keyword %q already present in %q", keyword, category)
		}
	}

	s.keywords[category] = append(kws, keyword)
	return s.Save()
}

// Save serializes the full mapping to the category document. Failures are
// reported as *PersistenceError; the in-memory state is untouched.
func (s *Store) Save() error {
	doc := document{categories: s.Categories()}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Normalize lowercases and trims a keyword.
func Normalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// document is the persisted YAML shape: a mapping from category name to its
// keyword array. Custom node handling keeps the mapping in insertion order.
type document struct {
	categories []Category
}

// MarshalYAML emits the categories as an order-preserving YAML mapping.
func (d *document) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range d.categories {
		var key, val yaml.Node
		if err := key.Encode(c.Name); err != nil {
			return nil, err
		}
		keywords := c.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		if err := val.Encode(keywords); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// UnmarshalYAML reads the mapping back, preserving document order.
func (d *document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("category document must be a mapping, got %v", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("decoding category name: %w", err)
		}
		var keywords []string
		if err := node.Content[i+1].Decode(&keywords); err != nil {
			return fmt.Errorf("decoding keywords for %q: %w", name, err)
		}
		d.categories = append(d.categories, Category{Name: name, Keywords: keywords})
	}
	return nil
}
