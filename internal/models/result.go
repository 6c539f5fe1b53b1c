package models

type GenerateCourseRequest struct {
	CVAnalysis  *CVAnalysis        `json:"cvAnalysis" validate:"required"`
	Preferences *CoursePreferences `json:"preferences" validate:"required"`
}

type AnalyzeCVResponse struct {
	Success  bool        `json:"success"`
	Analysis *CVAnalysis `json:"analysis"`
	RawText  string      `json:"rawText"`
}

type GenerateCourseResponse struct {
	Success bool             `json:"success"`
	Course  *GeneratedCourse `json:"course"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

type ProbeDetails struct {
	Response string      `json:"response"`
	Model    string      `json:"model"`
	Usage    *TokenUsage `json:"usage,omitempty"`
}

type ProbeSuccessResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Details ProbeDetails `json:"details"`
}

type ProbeFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
