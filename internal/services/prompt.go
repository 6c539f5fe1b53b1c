package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/ai-course-generator/internal/models"
)

const (
	analysisSystemInstruction = "You are an expert career counselor and CV analyzer. Provide accurate, helpful analysis in valid JSON format only."
	courseSystemInstruction   = "You are an expert learning designer and career coach. Create comprehensive, practical courses that lead to job readiness. Provide valid JSON only."
	probeUserPrompt           = "Test connection"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVAnalysisPrompt embeds the extracted CV text verbatim together with the expected output shape.
func (pb *PromptBuilder) BuildCVAnalysisPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the following CV text and extract key information in JSON format.

CV TEXT:
%s

Return a single JSON object with exactly this structure:
{
  "skills": ["list of technical and soft skills found"],
  "experience": "summary of work experience level",
  "education": "highest education qualification",
  "gaps": ["skills commonly required for their target role that are missing"],
  "strengths": ["key strengths and standout qualities"],
  "targetRole": "most suitable job role based on their profile",
  "industryFocus": "most suitable industry based on their background",
  "experienceLevel": "one of: beginner, intermediate, advanced",
  "careerStage": "one of: student, entry-level, mid-level, senior"
}

Focus on identifying skill gaps that would prevent them from getting hired in their target role.
Return ONLY the JSON object, no markdown and no text before or after it.`, cvText)
}

// BuildCoursePrompt embeds the analysis and the learner preferences together with the course shape.
func (pb *PromptBuilder) BuildCoursePrompt(analysis *models.CVAnalysis, prefs *models.CoursePreferences) string {
	return fmt.Sprintf(`You are now my personal AI tutor.

Create a complete, personalized learning course for me based on my CV analysis and preferences:

1. A custom curriculum with 4 to 6 modules that progress logically.
2. Each module has bite-sized lessons, simplified explanations and real-world examples.
3. Each module ends with a checkpoint: a quiz, a reflection prompt, an exercise or a project.
4. Include reading lists, relevant tools and resources, and optional challenges for deeper learning.
5. Adapt the depth and speed of the course to the time I have per day and my current knowledge level.
6. Stay friendly, clear and focused like a world-class coach.

MY PROFILE:
- Current Skills: %s
- Experience Level: %s
- Education: %s
- Skill Gaps: %s
- Target Role: %s
- Industry Focus: %s

MY PREFERENCES:
- Time per day: %d minutes
- Experience level: %s
- Learning style: %s

Return a single JSON object with exactly this structure:
{
  "courseTitle": "Course title",
  "courseDescription": "Brief description",
  "totalDuration": "X weeks",
  "modules": [
    {
      "id": "module-1",
      "title": "Module title",
      "description": "What this module covers",
      "duration": "X weeks",
      "difficulty": "one of: beginner, intermediate, advanced",
      "lessons": [
        {
          "id": "lesson-1-1",
          "title": "Lesson title",
          "content": "What you'll learn in this lesson",
          "duration": "X minutes",
          "type": "one of: video, reading, exercise, project"
        }
      ],
      "checkpoint": {
        "type": "one of: quiz, reflection, exercise, project",
        "title": "Checkpoint title",
        "description": "What the checkpoint involves",
        "questions": ["question 1", "question 2"]
      },
      "resources": [
        {
          "title": "Resource title",
          "type": "one of: article, tool, book, course, practice",
          "url": "optional URL",
          "description": "Why this resource is helpful"
        }
      ]
    }
  ]
}

Include "questions" only when the checkpoint type is quiz.
Focus on the skill gaps identified and create a course that will make me job-ready for my target role.
Return ONLY the JSON object, no markdown and no text before or after it.`,
		joinOrNone(analysis.Skills),
		analysis.Experience,
		analysis.Education,
		joinOrNone(analysis.Gaps),
		targetRoleFor(analysis, prefs),
		analysis.IndustryFocus,
		prefs.TimePerDay,
		prefs.ExperienceLevel,
		prefs.LearningStyle,
	)
}

// BuildProbeSystemInstruction asks the model for a fixed one-line reply.
func (pb *PromptBuilder) BuildProbeSystemInstruction(providerName string) string {
	return fmt.Sprintf("You are a helpful assistant. Respond with exactly: '%s API is working correctly!'", providerName)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// targetRoleFor prefers the role from the analysis and falls back to the one the learner typed.
func targetRoleFor(analysis *models.CVAnalysis, prefs *models.CoursePreferences) string {
	if analysis.TargetRole != "" {
		return analysis.TargetRole
	}
	return prefs.TargetRole
}
