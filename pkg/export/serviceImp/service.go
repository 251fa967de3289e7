package serviceImp

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"milkman/pkg/apperr"
	esvc "milkman/pkg/export/service"
	"milkman/pkg/logger"
	"milkman/pkg/report"
	ssvc "milkman/pkg/summary/service"
)

type service struct {
	summary   ssvc.Service
	renderers map[string]report.Renderer
	log       *slog.Logger
}

func New(summary ssvc.Service, pdfCompress bool, log *slog.Logger) esvc.Service {
	return &service{
		summary: summary,
		renderers: map[string]report.Renderer{
			esvc.FormatPDF:   report.PDFRenderer{Compress: pdfCompress},
			esvc.FormatExcel: report.XLSXRenderer{},
		},
		log: logger.WithComponent(log, logger.ComponentReport),
	}
}

// Export renders the month into a buffer; nothing touches the disk.
func (s *service) Export(ctx context.Context, format, month string) (*esvc.Artifact, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "xlsx" {
		format = esvc.FormatExcel
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, apperr.Validation("unknown export format %q (want pdf or excel)", format)
	}

	rows, err := s.summary.Monthly(ctx, month)
	if err != nil {
		return nil, err
	}
	month = strings.TrimSpace(month)

	var buf bytes.Buffer
	if err := r.Render(&buf, month, rows); err != nil {
		return nil, apperr.Internal("render "+format+" report", err)
	}
	s.log.InfoContext(ctx, "report rendered",
		logger.FieldFormat, format, logger.FieldMonth, month, "rows", len(rows), "bytes", buf.Len())

	return &esvc.Artifact{
		FileName:    report.FileName(r, month),
		ContentType: r.ContentType(),
		Body:        buf.Bytes(),
		Rows:        len(rows),
	}, nil
}
