package application

import (
	"context"

	"github.com/sngm3741/job-application/web/internal/domain"
)

// SubmittedStatus is shown after every accepted submission. Nothing is sent anywhere;
// the submission is simulated.
const SubmittedStatus = "Your application has been successfully submitted!"

// SubmitApplicationCommand captures the raw form input of one submission.
type SubmitApplicationCommand struct {
	Name     string
	Email    string
	Phone    string
	Position string
	Resume   string
}

// Confirmation は確認画面へ渡す表示内容とステータスメッセージ。
type Confirmation struct {
	Details domain.Details
	Status  string
}

// SubmissionService describes the application submission use-case.
// SubmissionService は応募送信ユースケースを提供する。永続化は行わない。
type SubmissionService interface {
	Submit(ctx context.Context, cmd SubmitApplicationCommand) (Confirmation, error)
}

func NewSubmissionService(format domain.DisplayFormat) SubmissionService {
	return &submissionService{format: format}
}

type submissionService struct {
	format domain.DisplayFormat
}

func (s *submissionService) Submit(ctx context.Context, cmd SubmitApplicationCommand) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}

	app := domain.NewApplication(cmd.Name, cmd.Email, cmd.Phone, cmd.Position, cmd.Resume)
	return Confirmation{
		Details: app.Display(s.format),
		Status:  SubmittedStatus,
	}, nil
}
