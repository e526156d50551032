package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/pranav244872/resumecoach/extract/pdftest"
	"github.com/stretchr/testify/require"
)

func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	return pdftest.Build(pages...)
}

func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	body := ""
	for _, p := range paragraphs {
		body += fmt.Sprintf("<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	files := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractPlainText(t *testing.T) {
	doc, err := New().Extract([]byte("Python, SQL, Docker\nFive years of backend work."))
	require.NoError(t, err)
	require.Equal(t, MimeText, doc.MimeType)
	require.Contains(t, doc.Text, "Python, SQL, Docker")
}

func TestExtractBlankTextFails(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \n"} {
		_, err := New().Extract([]byte(input))
		require.ErrorIs(t, err, ErrExtractionFailed, "%q", input)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	doc, err := New().Extract(png)
	require.ErrorIs(t, err, ErrExtractionFailed)
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.Equal(t, "image/png", doc.MimeType)
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := New().Extract([]byte("%PDF-1.4\nthis is not really a pdf"))
	require.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractPDFPages(t *testing.T) {
	data := buildPDF(t, "Python SQL Docker", "", "MongoDB")
	require.Equal(t, MimePDF, DetectType(data))

	doc, err := New().Extract(data)
	require.NoError(t, err)
	require.Equal(t, MimePDF, doc.MimeType)
	require.Equal(t, 3, doc.Pages)
	require.Contains(t, doc.Text, "Python SQL Docker")
	require.Contains(t, doc.Text, "MongoDB")
	require.Less(t, bytes.Index([]byte(doc.Text), []byte("Python")), bytes.Index([]byte(doc.Text), []byte("MongoDB")))
}

func TestExtractPDFWithoutText(t *testing.T) {
	_, err := New().Extract(buildPDF(t, ""))
	require.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractMalformedPDFObjects(t *testing.T) {
	for _, offset := range []int{10, 47, 269, 306} {
		data := buildPDF(t, "Python SQL Docker")
		require.Less(t, offset, len(data))
		data[offset] ^= 0x5a

		var err error
		require.NotPanics(t, func() { _, err = New().Extract(data) }, "offset %d", offset)
		if offset == 10 || err != nil {
			require.ErrorIs(t, err, ErrExtractionFailed, "offset %d", offset)
		}
	}
}

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t, "Backend engineer", "Python &amp; FastAPI")
	require.Equal(t, MimeDOCX, DetectType(data))

	doc, err := New().Extract(data)
	require.NoError(t, err)
	require.Equal(t, MimeDOCX, doc.MimeType)
	require.Contains(t, doc.Text, "Backend engineer")
	require.Contains(t, doc.Text, "Python & FastAPI")
	require.NotContains(t, doc.Text, "<w:")
}
