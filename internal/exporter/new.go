package exporter

import (
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

type Options struct {
	OutputDir string
	Docx      bool
	Font      string
	FontSize  uint64
}

type implExporter struct {
	opts   Options
	logger logger.Logger
	now    func() time.Time
}

// New creates an Exporter writing into opts.OutputDir.
func New(opts Options, log logger.Logger) Exporter {
	if opts.Font == "" {
		opts.Font = "Times New Roman"
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &implExporter{
		opts:   opts,
		logger: log,
		now:    time.Now,
	}
}
