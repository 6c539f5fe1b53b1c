package services

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed schemas/cv_analysis.schema.json
	cvAnalysisSchema []byte

	//go:embed schemas/generated_course.schema.json
	generatedCourseSchema []byte
)

// SchemaValidator checks decoded model replies against the CVAnalysis and
// GeneratedCourse JSON schemas. Compiled schemas are safe for concurrent use.
type SchemaValidator struct {
	cvAnalysis *gojsonschema.Schema
	course     *gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	cvAnalysis, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(cvAnalysisSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile CV analysis schema: %w", err)
	}

	course, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(generatedCourseSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile course schema: %w", err)
	}

	return &SchemaValidator{cvAnalysis: cvAnalysis, course: course}, nil
}

func (v *SchemaValidator) ValidateCVAnalysis(document interface{}) error {
	return validateAgainst(v.cvAnalysis, document)
}

func (v *SchemaValidator) ValidateCourse(document interface{}) error {
	return validateAgainst(v.course, document)
}

func validateAgainst(schema *gojsonschema.Schema, document interface{}) error {
	res, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
}
