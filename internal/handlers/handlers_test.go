package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-course-generator/internal/config"
	"alfredoptarigan/ai-course-generator/internal/models"
	"alfredoptarigan/ai-course-generator/internal/services"
)

type fakeParser struct {
	content  *services.PDFContent
	err      error
	gotPath  string
	existed  bool
	numCalls int
}

func (f *fakeParser) ExtractTextWithMetaData(filePath string) (*services.PDFContent, error) {
	f.numCalls++
	f.gotPath = filePath
	_, statErr := os.Stat(filePath)
	f.existed = statErr == nil
	return f.content, f.err
}

type fakeAnalyzer struct {
	analysis *models.CVAnalysis
	err      error
	gotText  string
	numCalls int
}

func (f *fakeAnalyzer) AnalyzeCV(ctx context.Context, cvText string) (*models.CVAnalysis, error) {
	f.numCalls++
	f.gotText = cvText
	return f.analysis, f.err
}

type fakeCourseGenerator struct {
	course   *models.GeneratedCourse
	err      error
	numCalls int
}

func (f *fakeCourseGenerator) GenerateCourse(ctx context.Context, analysis *models.CVAnalysis, prefs *models.CoursePreferences) (*models.GeneratedCourse, error) {
	f.numCalls++
	return f.course, f.err
}

type fakeProbe struct {
	result *services.ProbeResult
}

func (f *fakeProbe) TestConnection(ctx context.Context) *services.ProbeResult {
	return f.result
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func multipartRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if field != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file here"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-cv", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &body), string(data))
	return resp, body
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func sampleAnalysis() *models.CVAnalysis {
	return &models.CVAnalysis{
		Skills:          []string{"Python", "SQL"},
		Experience:      "2 years",
		Education:       "BSc",
		Gaps:            []string{"Machine learning"},
		Strengths:       []string{"Communication"},
		TargetRole:      "Data Scientist",
		IndustryFocus:   "Technology",
		ExperienceLevel: models.LevelIntermediate,
		CareerStage:     "entry-level",
	}
}

var testAllowedTypes = config.DefaultAllowedMIMETypes
