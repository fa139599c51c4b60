package apply

import (
	"errors"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/sngm3741/job-application/web/internal/application"
	"github.com/sngm3741/job-application/web/internal/domain"
	"github.com/sngm3741/job-application/web/internal/interfaces/http/common"
	"github.com/sngm3741/job-application/web/internal/metrics"
	"github.com/sngm3741/job-application/web/internal/view"
)

func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxFormRequestBody)

		if err := parseForm(r); err != nil {
			h.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeBadRequest).Inc()
			h.logger.Debug("フォームの解析に失敗", zap.Error(err))
			h.renderError(w, http.StatusBadRequest, "The submitted form could not be read.")
			return
		}

		cmd, err := commandFromForm(r.PostForm)
		if err != nil {
			var missing *domain.MissingFieldError
			if errors.As(err, &missing) {
				h.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeMissingField).Inc()
				h.metrics.MissingFields.WithLabelValues(missing.Field).Inc()
				h.logger.Debug("必須フィールドが不足", zap.String("field", missing.Field))
				h.renderError(w, http.StatusBadRequest, "Missing required field: "+missing.Field)
				return
			}
			h.renderError(w, http.StatusBadRequest, "The submitted form could not be read.")
			return
		}

		confirmation, err := h.submissions.Submit(r.Context(), cmd)
		if err != nil {
			h.logger.Error("応募の送信処理に失敗", zap.Error(err))
			h.renderError(w, http.StatusInternalServerError, "The application could not be processed.")
			return
		}

		if !h.render(w, r, http.StatusOK, view.SubmittedPage, view.ConfirmationData(confirmation)) {
			h.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeRenderError).Inc()
			return
		}
		h.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeSubmitted).Inc()
		h.logger.Debug("応募を受け付けました", zap.String("position", cmd.Position))
	}
}

// parseForm は urlencoded と multipart のどちらのボディも r.PostForm に展開する。
func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(common.MaxMultipartMemory)
	}
	return r.ParseForm()
}

// commandFromForm は必須フィールドを表示順に取り出す。キー自体が存在しない場合のみ
// MissingFieldError を返し、空文字はそのまま受け付ける。
func commandFromForm(values url.Values) (application.SubmitApplicationCommand, error) {
	fields := make(map[string]string, len(domain.RequiredFields))
	for _, field := range domain.RequiredFields {
		vs, ok := values[field]
		if !ok || len(vs) == 0 {
			return application.SubmitApplicationCommand{}, &domain.MissingFieldError{Field: field}
		}
		fields[field] = vs[0]
	}

	return application.SubmitApplicationCommand{
		Name:     fields[domain.FieldName],
		Email:    fields[domain.FieldEmail],
		Phone:    fields[domain.FieldPhone],
		Position: fields[domain.FieldPosition],
		Resume:   fields[domain.FieldResume],
	}, nil
}
