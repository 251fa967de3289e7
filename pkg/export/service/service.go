package service

import "context"

const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// Artifact is a rendered report held in memory.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
	Rows        int
}

type Service interface {
	Export(ctx context.Context, format, month string) (*Artifact, error)
}
