package models

import "strings"

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOC  = "application/msword"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// UploadedDocument is a file received by the intake step. It lives only for
// the duration of one request.
type UploadedDocument struct {
	OriginalFileName string
	MIMEType         string
	Size             int64
	StoredName       string
	StoredPath       string
}

func (d *UploadedDocument) IsPDF() bool {
	return NormalizeMIMEType(d.MIMEType) == MIMETypePDF
}

// NormalizeMIMEType drops parameters such as "; charset=binary" and lowercases the type.
func NormalizeMIMEType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
