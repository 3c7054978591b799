package importer

import (
	"fmt"
	"io"

	"github.com/ritamartins/budgie/internal/budget"
	"github.com/ritamartins/budgie/internal/importer/generic"
)

type Service struct {
	genericParser Parser
}

func NewService() *Service {
	return &Service{
		genericParser: generic.NewParser(),
	}
}

func (s *Service) Parse(format Format, r io.Reader) ([]budget.AddParams, error) {
	switch format {
	case FormatGeneric, "":
		return s.genericParser.Parse(r)
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}
}
