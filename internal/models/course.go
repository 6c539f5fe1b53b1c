package models

type CheckpointType string

const (
	CheckpointQuiz       CheckpointType = "quiz"
	CheckpointReflection CheckpointType = "reflection"
	CheckpointExercise   CheckpointType = "exercise"
	CheckpointProject    CheckpointType = "project"
)

type GeneratedCourse struct {
	CourseTitle       string         `json:"courseTitle"`
	CourseDescription string         `json:"courseDescription"`
	TotalDuration     string         `json:"totalDuration"`
	Modules           []CourseModule `json:"modules"`
}

type CourseModule struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	Difficulty  ExperienceLevel `json:"difficulty"`
	Lessons     []Lesson        `json:"lessons"`
	Checkpoint  Checkpoint      `json:"checkpoint"`
	Resources   []Resource      `json:"resources"`
}

type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
	Type     string `json:"type"` // video, reading, exercise or project
}

type Checkpoint struct {
	Type        CheckpointType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []string       `json:"questions,omitempty"`
}

type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"` // article, tool, book, course or practice
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
}
