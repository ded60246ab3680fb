package renderer

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// PageDim is the media-box size of one page in PDF points (document space)
type PageDim struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Info describes a probed document: what the field editor needs to place
// fields against without ever rasterizing a page itself
type Info struct {
	PageCount int       `json:"page_count"`
	Pages     []PageDim `json:"pages"`
}

// Service probes uploaded PDF bytes for page count and page dimensions.
// Rendering itself happens client-side; this is the server's view of the
// renderer boundary. A probe failure is the document-load error state: the
// upload is rejected and no field placement is possible.
type Service struct {
	logger *zap.Logger
}

// NewService creates a renderer probe service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Probe parses the PDF and reports page count and per-page dimensions
func (s *Service) Probe(data []byte) (*Info, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to resolve page count: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve page dimensions: %w", err)
	}

	info := &Info{
		PageCount: ctx.PageCount,
		Pages:     make([]PageDim, len(dims)),
	}
	for i, d := range dims {
		info.Pages[i] = PageDim{Width: d.Width, Height: d.Height}
	}

	s.logger.Debug("document probed",
		zap.Int("pages", info.PageCount),
	)
	return info, nil
}
