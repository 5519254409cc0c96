// Package carrier owns the table of shipping carriers offered on quotes.
package carrier

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed carriers.yaml
var defaultCatalog []byte

var ErrUnknownCarrier = errors.New("unknown carrier")

type Option struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"delivery_time"`
	Description  string          `json:"description"`
}

type fileEntry struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Price        string `yaml:"price"`
	DeliveryTime string `yaml:"delivery_time"`
	Description  string `yaml:"description"`
}

type file struct {
	Carriers []fileEntry `yaml:"carriers"`
}

// Catalog is read-only once loaded. Options are returned by value so a quote
// holding one can never see a later price change.
type Catalog struct {
	byID  map[string]Option
	order []string
}

func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, falling back to the embedded table when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read carrier catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode carrier catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Option, len(f.Carriers))}
	for _, e := range f.Carriers {
		if e.ID == "" {
			return nil, errors.New("carrier without id")
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate carrier %q", e.ID)
		}
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("carrier %q: invalid price %q: %w", e.ID, e.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("carrier %q: negative price", e.ID)
		}
		c.byID[e.ID] = Option{
			ID:           e.ID,
			Name:         e.Name,
			Price:        price,
			DeliveryTime: e.DeliveryTime,
			Description:  e.Description,
		}
		c.order = append(c.order, e.ID)
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Option, error) {
	opt, ok := c.byID[id]
	if !ok {
		return Option{}, fmt.Errorf("%w: %s", ErrUnknownCarrier, id)
	}
	return opt, nil
}

// List returns the options cheapest first, keeping file order on ties.
func (c *Catalog) List() []Option {
	out := make([]Option, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.LessThan(out[j].Price)
	})
	return out
}
