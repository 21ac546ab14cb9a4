package worker

// notify_worker.go
// Processes notification jobs from QueueNotify: withdrawal requests
// emailed to the approver mailbox via SMTP.

import (
	"context"
	"encoding/json"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotifyJobPayload is the job envelope sent to QueueNotify.
type NotifyJobPayload struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

// NotifyWorker delivers queued notification emails through the SMTP mailer.
type NotifyWorker struct {
	mailer *infra.Mailer
}

func NewNotifyWorker(mailer *infra.Mailer) *NotifyWorker {
	return &NotifyWorker{mailer: mailer}
}

// Process sends one notification email. A nil return acknowledges the job;
// an error sends it back through the retry path.
func (w *NotifyWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotifyJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_worker: invalid payload")
		return nil // malformed payloads never succeed on retry
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notify_worker: empty to_email, skipping")
		return nil
	}

	if err := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, payload.AttachmentPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notify_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("notify_worker: notification sent")
	return nil
}
