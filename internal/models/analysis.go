package models

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

type LearningStyle string

const (
	StyleTheoretical LearningStyle = "theoretical"
	StylePractical   LearningStyle = "practical"
	StyleMixed       LearningStyle = "mixed"
)

// CVAnalysis is the structured profile extracted from a CV by the model.
type CVAnalysis struct {
	Skills          []string        `json:"skills"`
	Experience      string          `json:"experience"`
	Education       string          `json:"education"`
	Gaps            []string        `json:"gaps"`
	Strengths       []string        `json:"strengths"`
	TargetRole      string          `json:"targetRole"`
	IndustryFocus   string          `json:"industryFocus"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	CareerStage     string          `json:"careerStage"`
}

type CoursePreferences struct {
	TimePerDay      int             `json:"timePerDay" validate:"required,gt=0"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" validate:"required,oneof=beginner intermediate advanced"`
	TargetRole      string          `json:"targetRole,omitempty"`
	LearningStyle   LearningStyle   `json:"learningStyle" validate:"required,oneof=theoretical practical mixed"`
}
