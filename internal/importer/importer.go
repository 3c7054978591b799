package importer

import (
	"io"

	"github.com/ritamartins/budgie/internal/budget"
)

// Format names a supported statement layout.
type Format string

const (
	// FormatGeneric is a CSV export with Date, Amount and optionally
	// Currency, Category and Description columns.
	FormatGeneric Format = "generic"
)

type Parser interface {
	Parse(r io.Reader) ([]budget.AddParams, error)
}
