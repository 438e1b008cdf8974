package handler

import (
	"amply/internal/intake/feedback"
	"amply/internal/intake/models"
)

type submitResponse struct {
	State         models.SubmissionState                       `json:"state"`
	Accepted      bool                                         `json:"accepted"`
	Entry         *models.Entry                                `json:"entry,omitempty"`
	Results       map[models.FieldName]models.ValidationResult `json:"results"`
	InvalidFields []models.FieldName                           `json:"invalid_fields"`
	Feedback      feedback.View                                `json:"feedback"`
}

func toSubmitResponse(outcome models.SubmissionOutcome, view feedback.View) submitResponse {
	invalid := outcome.Evaluation.Invalid()
	if invalid == nil {
		invalid = []models.FieldName{}
	}
	return submitResponse{
		State:         outcome.State,
		Accepted:      outcome.Accepted,
		Entry:         outcome.Entry,
		Results:       outcome.Evaluation.Results,
		InvalidFields: invalid,
		Feedback:      view,
	}
}

type fieldChangeResponse struct {
	Field     models.FieldName         `json:"field"`
	Immediate bool                     `json:"immediate"`
	Result    *models.ValidationResult `json:"result,omitempty"`
	Feedback  feedback.View            `json:"feedback"`
}

type listResponse struct {
	Entries []models.Entry `json:"entries"`
	Count   int            `json:"count"`
}

type referenceResponse struct {
	Countries  []string `json:"countries"`
	RiskLevels []string `json:"risk_levels"`
	MinYear    int      `json:"min_year"`
}
