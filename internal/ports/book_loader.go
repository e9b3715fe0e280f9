package ports

import "github.com/vrylskyj/abook/internal/domain"

// BookLoader builds an address book from a seed source (e.g., a YAML file).
type BookLoader interface {
	LoadBook(path string) (*domain.Book, error)
}
