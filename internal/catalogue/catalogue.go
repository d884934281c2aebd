// Package catalogue holds the static pool of daily action templates and the
// persona reference data shown alongside them.
package catalogue

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rich365/rich365/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalogue is returned when a catalogue holds no templates.
var ErrEmptyCatalogue = errors.New("catalogue has no templates")

type section struct {
	Category  domain.Category         `yaml:"category"`
	Templates []domain.ActionTemplate `yaml:"templates"`
}

// Catalogue is an ordered, read-only set of templates grouped by category.
type Catalogue struct {
	sections []section
	flat     []domain.ActionTemplate
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the built-in catalogue.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := newCatalogue(builtinSections)
		if err != nil {
			panic(fmt.Sprintf("built-in catalogue invalid: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

func newCatalogue(sections []section) (*Catalogue, error) {
	c := &Catalogue{sections: make([]section, 0, len(sections))}
	seenCat := make(map[domain.Category]bool)
	seenTitle := make(map[string]bool)

	for _, s := range sections {
		if !s.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q", s.Category)
		}
		if seenCat[s.Category] {
			return nil, fmt.Errorf("category %q listed twice", s.Category)
		}
		seenCat[s.Category] = true

		templates := make([]domain.ActionTemplate, 0, len(s.Templates))
		for i, t := range s.Templates {
			if err := validateTemplate(t); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", s.Category, i, err)
			}
			if seenTitle[t.Title] {
				return nil, fmt.Errorf("%s[%d]: duplicate title %q", s.Category, i, t.Title)
			}
			seenTitle[t.Title] = true
			t.Category = s.Category
			templates = append(templates, t)
			c.flat = append(c.flat, t)
		}
		c.sections = append(c.sections, section{Category: s.Category, Templates: templates})
	}

	if len(c.flat) == 0 {
		return nil, ErrEmptyCatalogue
	}
	return c, nil
}

func validateTemplate(t domain.ActionTemplate) error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.Description == "" {
		return errors.New("description is required")
	}
	if t.Emoji == "" {
		return errors.New("emoji is required")
	}
	for _, tr := range t.PersonalityPreference {
		if !domain.ValidTraits[tr] {
			return fmt.Errorf("unknown trait %q", tr)
		}
	}
	for _, r := range t.RolePreference {
		if !r.Valid() {
			return fmt.Errorf("unknown role %q", r)
		}
	}
	return nil
}

// LoadYAML reads a catalogue from a list of {category, templates} documents.
func LoadYAML(r io.Reader) (*Catalogue, error) {
	var sections []section
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalogue
		}
		return nil, fmt.Errorf("decoding catalogue: %w", err)
	}
	return newCatalogue(sections)
}

// WriteYAML encodes the catalogue in the format LoadYAML reads.
func (c *Catalogue) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.sections); err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	return enc.Close()
}

// Templates returns every template in catalogue order, tagged with its
// category. The slice is a copy.
func (c *Catalogue) Templates() []domain.ActionTemplate {
	out := make([]domain.ActionTemplate, len(c.flat))
	copy(out, c.flat)
	return out
}

func (c *Catalogue) Size() int { return len(c.flat) }

// Categories returns the categories present, in order.
func (c *Catalogue) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s.Category)
	}
	return out
}

// ByCategory returns the templates of one category.
func (c *Catalogue) ByCategory(cat domain.Category) []domain.ActionTemplate {
	for _, s := range c.sections {
		if s.Category == cat {
			out := make([]domain.ActionTemplate, len(s.Templates))
			copy(out, s.Templates)
			return out
		}
	}
	return nil
}

// Lookup finds a template by title.
func (c *Catalogue) Lookup(title string) (domain.ActionTemplate, bool) {
	for _, t := range c.flat {
		if t.Title == title {
			return t, true
		}
	}
	return domain.ActionTemplate{}, false
}

func traits(letters ...string) []domain.Trait {
	out := make([]domain.Trait, len(letters))
	for i, l := range letters {
		out[i] = domain.Trait(l)
	}
	return out
}
