package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-course-generator/internal/models"
)

type fakeReply struct {
	resp *GenerateResponse
	err  error
}

// fakeProvider replays replies in order and repeats the last one once they run out.
type fakeProvider struct {
	mu         sync.Mutex
	name       string
	envVar     string
	configured bool
	replies    []fakeReply
	requests   []GenerateRequest
}

func newFakeProvider(replies ...fakeReply) *fakeProvider {
	return &fakeProvider{
		name:       "Gemini",
		envVar:     "GEMINI_API_KEY",
		configured: true,
		replies:    replies,
	}
}

func textReply(text string) fakeReply {
	return fakeReply{resp: &GenerateResponse{Text: text, Model: "test-model"}}
}

func errorReply(kind ErrorKind, msg string) fakeReply {
	return fakeReply{err: &ProviderError{Provider: "Gemini", Kind: kind, Err: fmt.Errorf("%s", msg)}}
}

func (f *fakeProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.requests)
	f.requests = append(f.requests, req)
	if len(f.replies) == 0 {
		return nil, fmt.Errorf("no reply scripted")
	}
	if i >= len(f.replies) {
		i = len(f.replies) - 1
	}
	return f.replies[i].resp, f.replies[i].err
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) CredentialEnv() string { return f.envVar }

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func sampleAnalysis() *models.CVAnalysis {
	return &models.CVAnalysis{
		Skills:          []string{"Python", "SQL"},
		Experience:      "2 years as a data analyst",
		Education:       "BSc Computer Science",
		Gaps:            []string{"Machine learning", "Cloud deployment"},
		Strengths:       []string{"Analytical thinking"},
		TargetRole:      "Data Scientist",
		IndustryFocus:   "Technology",
		ExperienceLevel: models.LevelIntermediate,
		CareerStage:     "entry-level",
	}
}

func samplePreferences() *models.CoursePreferences {
	return &models.CoursePreferences{
		TimePerDay:      60,
		ExperienceLevel: models.LevelIntermediate,
		LearningStyle:   models.StylePractical,
	}
}

func sampleCourse(moduleCount int) *models.GeneratedCourse {
	course := &models.GeneratedCourse{
		CourseTitle:       "Path to Data Scientist",
		CourseDescription: "From analyst to data scientist",
		TotalDuration:     "8 weeks",
		Modules:           []models.CourseModule{},
	}

	for i := 1; i <= moduleCount; i++ {
		course.Modules = append(course.Modules, models.CourseModule{
			ID:          fmt.Sprintf("module-%d", i),
			Title:       fmt.Sprintf("Module %d", i),
			Description: "Core concepts",
			Duration:    "2 weeks",
			Difficulty:  models.LevelIntermediate,
			Lessons: []models.Lesson{{
				ID:       fmt.Sprintf("lesson-%d-1", i),
				Title:    "Getting started",
				Content:  "Walkthrough with examples",
				Duration: "30 minutes",
				Type:     "reading",
			}},
			Checkpoint: models.Checkpoint{
				Type:        models.CheckpointQuiz,
				Title:       "Check your understanding",
				Description: "Short quiz",
				Questions:   []string{"What is overfitting?"},
			},
			Resources: []models.Resource{{
				Title:       "scikit-learn docs",
				Type:        "tool",
				URL:         "https://scikit-learn.org",
				Description: "Reference documentation",
			}},
		})
	}

	return course
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func mustDocument(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, v)), &doc))
	return doc
}

func newTestValidator(t *testing.T) *SchemaValidator {
	t.Helper()
	v, err := NewSchemaValidator()
	require.NoError(t, err)
	return v
}
