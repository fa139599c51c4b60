package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/job-application/web/internal/domain"
)

func createTestCommand() SubmitApplicationCommand {
	return SubmitApplicationCommand{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Position: "Engineer",
		Resume:   "Link: example.com/resume",
	}
}

func TestSubmissionService_SubmitStructured(t *testing.T) {
	svc := NewSubmissionService(domain.DisplayStructured)

	got, err := svc.Submit(context.Background(), createTestCommand())

	require.NoError(t, err)
	assert.Equal(t, SubmittedStatus, got.Status)
	assert.Equal(t, domain.DisplayStructured, got.Details.Format)
	assert.Equal(t, "ada@example.com", got.Details.Map()[domain.FieldEmail])
}

func TestSubmissionService_SubmitText(t *testing.T) {
	svc := NewSubmissionService(domain.DisplayText)

	got, err := svc.Submit(context.Background(), createTestCommand())

	require.NoError(t, err)
	assert.Equal(t, "Your application has been successfully submitted!", got.Status)
	assert.Contains(t, got.Details.Text(), "Position Applied: Engineer")
}

func TestSubmissionService_SubmitCancelledContext(t *testing.T) {
	svc := NewSubmissionService(domain.DisplayText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, createTestCommand())

	assert.ErrorIs(t, err, context.Canceled)
}
