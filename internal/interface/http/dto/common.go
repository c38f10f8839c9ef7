package dto

import (
	"strings"
	"time"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

const dateLayout = "2006-01-02"

// CandidateRequest - тело запросов, которые адресуют кандидата.
type CandidateRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, apperror.Validation("%s должна быть в формате ГГГГ-ММ-ДД", field)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
