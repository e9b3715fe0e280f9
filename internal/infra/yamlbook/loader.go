package yamlbook

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vrylskyj/abook/internal/domain"
	"github.com/vrylskyj/abook/internal/ports"
)

// Loader reads a seed file of contacts and builds a Book through the domain
// constructors, so every seeded value passes the same validation as REPL
// input. Seeding is read-only: the book is never written back.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.BookLoader = (*Loader)(nil)

func (l *Loader) LoadBook(path string) (*domain.Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yb yamlBook
	if err := yaml.Unmarshal(b, &yb); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindInvalidFormat,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yb)
}

type yamlBook struct {
	Contacts []yamlContact `yaml:"contacts"`
}

type yamlContact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday"`
}

func mapAndValidate(path string, yb yamlBook) (*domain.Book, error) {
	book := domain.NewBook()
	seen := map[string]bool{}

	for i, c := range yb.Contacts {
		fieldPrefix := fmt.Sprintf("contacts[%d]", i)

		if strings.TrimSpace(c.Name) == "" {
			return nil, invalidField(path, fieldPrefix+".name", "contact name is required")
		}
		if seen[c.Name] {
			return nil, &domain.OpError{
				Op:   "yamlbook.load",
				Kind: domain.KindDuplicateName,
				Path: path,
				Err:  fmt.Errorf("%s: duplicate contact %q", fieldPrefix, c.Name),
			}
		}
		seen[c.Name] = true

		r := domain.NewRecord(c.Name)
		for j, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, invalidField(path, fmt.Sprintf("%s.phones[%d]", fieldPrefix, j), err.Error())
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				return nil, invalidField(path, fieldPrefix+".birthday", err.Error())
			}
		}
		book.AddRecord(r)
	}

	return book, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlbook.load",
		Kind: domain.KindInvalidFormat,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}
