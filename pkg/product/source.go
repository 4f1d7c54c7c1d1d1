// Package product defines the boundary to the page-scraping collaborator.
// The scraper runs outside quicklist (in the browser extension); quicklist
// only consumes the Product it produces.
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// ErrNotFound is returned when the current page carries no recognizable product.
var ErrNotFound = errors.New("no product found on page")

// Source produces the product captured from a retail page.
type Source interface {
	RequestProduct(ctx context.Context) (domain.Product, error)
}

// Static is a Source that always returns the same product.
type Static domain.Product

// RequestProduct implements Source.
func (s Static) RequestProduct(_ context.Context) (domain.Product, error) {
	p := domain.Product(s)
	if strings.TrimSpace(p.Title) == "" {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// FileSource reads a product JSON document written by the extension's
// "export" action, or any tool producing the same shape.
type FileSource struct {
	Path string
}

// RequestProduct implements Source. A missing file or a document without a
// title is reported as ErrNotFound.
func (f FileSource) RequestProduct(ctx context.Context) (domain.Product, error) {
	if f.Path == "-" {
		return Decode(ctx, os.Stdin)
	}

	file, err := os.Open(f.Path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Product{}, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
		}
		return domain.Product{}, fmt.Errorf("opening product file: %w", err)
	}
	defer file.Close()

	return Decode(ctx, file)
}

// Decode parses a product document. Prices are accepted as JSON strings or
// numbers, and a currency symbol left over by the scraper is stripped.
func Decode(_ context.Context, r io.Reader) (domain.Product, error) {
	var raw struct {
		domain.Product
		Price             flexPrice `json:"price"`
		QuantityAvailable int       `json:"quantityAvailable"`
	}

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return domain.Product{}, fmt.Errorf("parsing product: %w", err)
	}

	p := raw.Product
	p.Price = string(raw.Price)
	if p.Quantity == 0 {
		p.Quantity = raw.QuantityAvailable
	}
	if strings.TrimSpace(p.Title) == "" {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// flexPrice decodes "19,99 €", "19.99" and 19.99 into "19.99".
type flexPrice string

func (f *flexPrice) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexPrice(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("price must be a string or number: %w", err)
	}
	s = strings.NewReplacer("€", "", "$", "", "£", "", "\u00a0", "", " ", "").Replace(s)
	*f = flexPrice(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	return nil
}
