package printing

import (
	"bytes"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// MIMETypePDF is the content type of generated and uploaded letters
const MIMETypePDF = "application/pdf"

// PDFInfo describes a PDF that passed inspection
type PDFInfo struct {
	MIMEType  string
	PageCount int
	Size      int
}

// InspectPDF checks that data is a readable PDF and counts its pages.
// It is used on uploaded appointment letters before they are mailed.
func InspectPDF(data []byte) (*PDFInfo, error) {
	if len(data) == 0 {
		return nil, NewRenderError(ErrCodeInvalidPDF, "file is empty", nil)
	}

	mime := mimetype.Detect(data)
	if !mime.Is(MIMETypePDF) {
		return nil, NewRenderError(ErrCodeInvalidPDF, "file is not a PDF (detected "+mime.String()+")", nil)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidPDF, "PDF could not be read", err)
	}

	return &PDFInfo{
		MIMEType:  mime.String(),
		PageCount: reader.NumPage(),
		Size:      len(data),
	}, nil
}

// pageCount reads the page count of a generated PDF. When the reader rejects
// the file it counts page objects instead, and never reports fewer than one.
func pageCount(data []byte) int {
	if reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		if n := reader.NumPage(); n > 0 {
			return n
		}
	}
	n := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	return max(n, 1)
}
