package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"
)

// maxItemIDLen keeps "buy:<id>" inside Telegram's 64 byte callback data limit.
const maxItemIDLen = 60

//go:embed default.yaml
var defaultCatalog []byte

type fileItem struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Price string `yaml:"price"`
	URL   string `yaml:"url"`
	File  string `yaml:"file"`
}

type file struct {
	Items []fileItem `yaml:"items"`
}

// Catalog is an immutable item list, safe for concurrent use.
type Catalog struct {
	items []*domain.Item
	byID  map[string]*domain.Item
}

// NewCatalog loads the catalog from conf.Path or falls back to the embedded default.
func NewCatalog(conf *config.Catalog) (*Catalog, error) {
	data := defaultCatalog
	if conf.Path != "" {
		var err error
		data, err = os.ReadFile(conf.Path)
		if err != nil {
			return nil, fmt.Errorf("error reading catalog %s: %w", conf.Path, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, errors.New("catalog has no items")
	}

	c := &Catalog{
		items: make([]*domain.Item, 0, len(f.Items)),
		byID:  make(map[string]*domain.Item, len(f.Items)),
	}
	for i, fi := range f.Items {
		item, err := fi.toDomain()
		if err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("catalog item %d: duplicate id %q", i, item.ID)
		}
		c.items = append(c.items, item)
		c.byID[item.ID] = item
	}
	return c, nil
}

func (fi fileItem) toDomain() (*domain.Item, error) {
	if fi.ID == "" || len(fi.ID) > maxItemIDLen {
		return nil, fmt.Errorf("id %q must be 1..%d bytes", fi.ID, maxItemIDLen)
	}
	if fi.Title == "" {
		return nil, fmt.Errorf("item %s has no title", fi.ID)
	}
	if fi.URL == "" {
		return nil, fmt.Errorf("item %s has no url", fi.ID)
	}
	price, err := decimal.Parse(fi.Price)
	if err != nil {
		return nil, fmt.Errorf("item %s price: %w", fi.ID, err)
	}
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("item %s price must be positive", fi.ID)
	}
	name := fi.File
	if name == "" {
		name = fi.Title + ".pdf"
	}
	return &domain.Item{
		ID:          fi.ID,
		Title:       fi.Title,
		Price:       price,
		DeliveryRef: fi.URL,
		FileName:    name,
	}, nil
}

func (c *Catalog) Item(itemID string) (*domain.Item, error) {
	item, ok := c.byID[itemID]
	if !ok {
		return nil, domain.ErrCatalogMiss
	}
	cp := *item
	return &cp, nil
}

func (c *Catalog) Items() []*domain.Item {
	list := make([]*domain.Item, 0, len(c.items))
	for _, i := range c.items {
		cp := *i
		list = append(list, &cp)
	}
	return list
}
