// Package catalog loads the bundled resort catalog and derives the filtered and
// sorted views the API serves.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dom/snowseeker/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

//go:embed resorts.json
var bundledResorts []byte

// Provider holds the immutable, ordered resort catalog.
type Provider struct {
	resorts []domain.Resort
	byID    map[string]int
}

// LoadEmbedded loads the catalog that ships inside the binary.
func LoadEmbedded() (*Provider, error) {
	return Load(bytes.NewReader(bundledResorts))
}

// LoadFile loads a catalog from a JSON file on disk.
func LoadFile(path string) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a JSON array of resorts. Records without an id get one derived
// from their name. Every record is validated and ids must be unique.
func Load(r io.Reader) (*Provider, error) {
	var resorts []domain.Resort
	if err := json.NewDecoder(r).Decode(&resorts); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return New(resorts)
}

// New builds a provider from already decoded resorts, keeping their order.
func New(resorts []domain.Resort) (*Provider, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	p := &Provider{
		resorts: make([]domain.Resort, 0, len(resorts)),
		byID:    make(map[string]int, len(resorts)),
	}

	for i, r := range resorts {
		if r.ID == "" {
			r.ID = slug.Make(r.Name)
		}

		if err := validate.Struct(&r); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", domain.ErrInvalidResort, i, r.Name, describeValidation(err))
		}

		if _, exists := p.byID[r.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateResort, r.ID)
		}

		r.Facilities = append([]string(nil), r.Facilities...)
		p.byID[r.ID] = len(p.resorts)
		p.resorts = append(p.resorts, r)
	}

	return p, nil
}

// All returns the catalog in its native order. The slice is a copy.
func (p *Provider) All() []domain.Resort {
	out := make([]domain.Resort, len(p.resorts))
	copy(out, p.resorts)
	return out
}

func (p *Provider) Get(id string) (*domain.Resort, error) {
	idx, ok := p.byID[id]
	if !ok {
		return nil, domain.ErrResortNotFound
	}
	r := p.resorts[idx]
	return &r, nil
}

func (p *Provider) Len() int {
	return len(p.resorts)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
	return msg
}
