// Package catalog holds the cities featured on the home page.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lox/skyview/internal/models"
	"github.com/lox/skyview/internal/slug"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Popular []models.PopularCity `yaml:"popular"`
	Recent  []string             `yaml:"recent"`
}

// Link pairs a display name with the identifier it routes to.
type Link struct {
	Name       string
	Identifier models.CityIdentifier
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path returns the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, p := range c.Popular {
		if p.Name == "" {
			return nil, fmt.Errorf("parse catalog: popular[%d]: %w", i, errors.New("missing name"))
		}
	}
	return &c, nil
}

// RecentLinks returns the recent searches with their identifiers.
func (c *Catalog) RecentLinks() []Link {
	links := make([]Link, 0, len(c.Recent))
	for _, name := range c.Recent {
		links = append(links, Link{Name: name, Identifier: slug.ToIdentifier(name)})
	}
	return links
}

// Lookup finds a popular city by identifier.
func (c *Catalog) Lookup(id models.CityIdentifier) (models.PopularCity, bool) {
	for _, p := range c.Popular {
		if slug.ToIdentifier(p.Name) == id {
			return p, true
		}
	}
	return models.PopularCity{}, false
}
