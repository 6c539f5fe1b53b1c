package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/models"
)

const (
	courseTemperature     = 0.4
	courseMaxOutputTokens = 8192
)

type CourseGeneratorService interface {
	GenerateCourse(ctx context.Context, analysis *models.CVAnalysis, prefs *models.CoursePreferences) (*models.GeneratedCourse, error)
}

type courseGeneratorService struct {
	llm           LLMProvider
	validator     *SchemaValidator
	promptBuilder *PromptBuilder
	retry         RetryPolicy
}

func NewCourseGeneratorService(llm LLMProvider, validator *SchemaValidator, retry RetryPolicy) CourseGeneratorService {
	return &courseGeneratorService{
		llm:           llm,
		validator:     validator,
		promptBuilder: NewPromptBuilder(),
		retry:         retry,
	}
}

// GenerateCourse builds a personalised curriculum. Results are not cached:
// identical inputs can produce different courses.
func (g *courseGeneratorService) GenerateCourse(ctx context.Context, analysis *models.CVAnalysis, prefs *models.CoursePreferences) (*models.GeneratedCourse, error) {
	if analysis == nil || prefs == nil {
		return nil, errors.New("analysis and preferences are required")
	}

	prompt := g.promptBuilder.BuildCoursePrompt(analysis, prefs)
	logger.Info().
		Str("provider", g.llm.Name()).
		Int("prompt_chars", len(prompt)).
		Int("time_per_day", prefs.TimePerDay).
		Str("learning_style", string(prefs.LearningStyle)).
		Msg("Generating course")

	var course models.GeneratedCourse
	err := generateJSON(ctx, g.llm, g.retry, GenerateRequest{
		SystemInstruction: courseSystemInstruction,
		Prompt:            prompt,
		Temperature:       courseTemperature,
		MaxOutputTokens:   courseMaxOutputTokens,
		JSON:              true,
	}, &course, g.validator.ValidateCourse)
	if err != nil {
		return nil, fmt.Errorf("failed to generate course: %w", err)
	}

	dropNonQuizQuestions(&course)

	logger.Info().
		Str("course_title", course.CourseTitle).
		Int("modules", len(course.Modules)).
		Msg("Course generated")

	return &course, nil
}

// dropNonQuizQuestions clears questions on checkpoints that are not quizzes.
func dropNonQuizQuestions(course *models.GeneratedCourse) {
	for i := range course.Modules {
		checkpoint := &course.Modules[i].Checkpoint
		if checkpoint.Type != models.CheckpointQuiz && len(checkpoint.Questions) > 0 {
			logger.Debug().
				Str("module", course.Modules[i].ID).
				Str("checkpoint_type", string(checkpoint.Type)).
				Msg("Dropping questions from non-quiz checkpoint")
			checkpoint.Questions = nil
		}
	}
}
