package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest is the JSON body accepted by POST /extract when the caller
// sends already-decoded text instead of a file upload.
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

// ScoreRequest is the JSON body accepted by POST /score. Exactly one of
// TargetRole, TargetKeywords or JobURL is enough; all three may be combined.
type ScoreRequest struct {
	Resume         *ParsedResume `json:"resume" validate:"required"`
	TargetRole     string        `json:"targetRole,omitempty" validate:"max=100"`
	TargetKeywords []string      `json:"targetKeywords,omitempty" validate:"max=50,dive,min=1,max=80"`
	JobURL         string        `json:"jobUrl,omitempty" validate:"omitempty,url"`
	UseAI          bool          `json:"useAi,omitempty"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
