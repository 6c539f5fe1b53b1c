package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a single-page PDF showing text with a standard Type1 font.
func buildPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestPDFParser_ExtractText(t *testing.T) {
	path := writeTempFile(t, "cv.pdf", buildPDF("Python developer"))

	content, err := NewPDFParserService().ExtractTextWithMetaData(path)
	require.NoError(t, err)

	assert.Contains(t, content.Text, "Python")
	assert.Equal(t, 1, content.PageCount)
	assert.Equal(t, path, content.FilePath)
}

func TestPDFParser_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.pdf", nil)

	var err error
	assert.NotPanics(t, func() {
		_, err = NewPDFParserService().ExtractTextWithMetaData(path)
	})
	assert.Error(t, err)
}

func TestPDFParser_NotAPDF(t *testing.T) {
	path := writeTempFile(t, "fake.pdf", []byte("this is plain text pretending to be a PDF"))

	var err error
	assert.NotPanics(t, func() {
		_, err = NewPDFParserService().ExtractTextWithMetaData(path)
	})
	assert.Error(t, err)
}

func TestPDFParser_MissingFile(t *testing.T) {
	_, err := NewPDFParserService().ExtractTextWithMetaData(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Jane Doe\nPython, SQL", CleanText("  Jane Doe  \n\n\n   Python, SQL \n  "))
	assert.Equal(t, "", CleanText(" \n \n"))
}
