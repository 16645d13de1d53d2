package outbox

import (
	"context"
	"time"

	"tmf-backend/internal/application/certificates"
	"tmf-backend/internal/application/emails"
	"tmf-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	// MaxAttempts is the delivery cap before a job is parked as failed.
	MaxAttempts = 5
	baseBackoff = 30 * time.Second
)

// Worker drains certificate_jobs: it renders the certificate PDF and emails
// it to the donor, retrying transient failures with exponential backoff.
type Worker struct {
	DB       *gorm.DB
	Certs    *certificates.Service
	Sender   emails.Sender
	Interval time.Duration
	Log      zerolog.Logger
}

// Enqueue records a pending certificate job for a donation. Delivery happens
// asynchronously on the next worker tick.
func Enqueue(ctx context.Context, db *gorm.DB, donationID *uuid.UUID, name, email string, amount float64) (*domain.CertificateJob, error) {
	job := &domain.CertificateJob{
		DonationID: donationID,
		Name:       name,
		Email:      email,
		Amount:     amount,
		Status:     domain.JobPending,
	}
	if err := db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Run polls for due jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Log.Info().Dur("interval", interval).Msg("certificate worker started")
	for {
		select {
		case <-ctx.Done():
			w.Log.Info().Msg("certificate worker stopped")
			return
		case <-ticker.C:
			if n := w.ProcessDue(ctx); n > 0 {
				w.Log.Info().Int("processed", n).Msg("certificate jobs processed")
			}
		}
	}
}

// ProcessDue delivers every pending job whose retry time has arrived and
// returns how many it attempted.
func (w *Worker) ProcessDue(ctx context.Context) int {
	var jobs []domain.CertificateJob
	err := w.DB.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", domain.JobPending, time.Now()).
		Order("next_attempt_at").
		Limit(20).
		Find(&jobs).Error
	if err != nil {
		w.Log.Error().Err(err).Msg("load due certificate jobs")
		return 0
	}

	for i := range jobs {
		w.process(ctx, &jobs[i])
	}
	return len(jobs)
}

func (w *Worker) process(ctx context.Context, job *domain.CertificateJob) {
	if err := w.deliver(ctx, job); err != nil {
		w.fail(ctx, job, err)
		return
	}
	err := w.DB.WithContext(ctx).Model(job).Updates(map[string]interface{}{
		"status":     domain.JobSent,
		"last_error": nil,
	}).Error
	if err != nil {
		w.Log.Error().Err(err).Str("job_id", job.ID.String()).Msg("mark certificate job sent")
		return
	}
	w.Log.Info().Str("job_id", job.ID.String()).Str("email", job.Email).Msg("certificate delivered")
}

func (w *Worker) deliver(ctx context.Context, job *domain.CertificateJob) error {
	cert, pdf, err := w.certificateFor(ctx, job)
	if err != nil {
		return err
	}
	if w.Sender == nil {
		w.Log.Warn().Str("job_id", job.ID.String()).Msg("smtp not configured, certificate issued without email")
		return nil
	}
	return w.Sender.SendCertificate(job.Email, job.Name, job.Amount, cert.CertificateID, cert.VerifyURL, pdf)
}

// certificateFor issues a certificate on first delivery and reuses it on
// retries so a flaky SMTP hop never mints duplicates.
func (w *Worker) certificateFor(ctx context.Context, job *domain.CertificateJob) (*domain.Certificate, []byte, error) {
	if job.CertificateID != nil {
		cert, err := w.Certs.Get(ctx, *job.CertificateID)
		if err != nil {
			return nil, nil, err
		}
		pdf, err := certificates.GeneratePDF(certificates.CertificateData{
			Name:          cert.Name,
			Amount:        cert.Amount,
			Date:          cert.IssuedAt.Format("02 Jan 2006"),
			CertificateID: cert.CertificateID,
			VerifyURL:     cert.VerifyURL,
		})
		return cert, pdf, err
	}

	cert, pdf, err := w.Certs.Issue(ctx, job.DonationID, job.Name, job.Email, job.Amount)
	if err != nil {
		return nil, nil, err
	}
	if err := w.DB.WithContext(ctx).Model(job).Update("certificate_id", cert.CertificateID).Error; err != nil {
		return nil, nil, err
	}
	job.CertificateID = &cert.CertificateID
	return cert, pdf, nil
}

func (w *Worker) fail(ctx context.Context, job *domain.CertificateJob, cause error) {
	attempts := job.Attempts + 1
	msg := cause.Error()
	updates := map[string]interface{}{
		"attempts":   attempts,
		"last_error": msg,
	}
	if attempts >= MaxAttempts {
		updates["status"] = domain.JobFailed
	} else {
		updates["next_attempt_at"] = time.Now().Add(baseBackoff * time.Duration(1<<job.Attempts))
	}
	if err := w.DB.WithContext(ctx).Model(job).Updates(updates).Error; err != nil {
		w.Log.Error().Err(err).Str("job_id", job.ID.String()).Msg("record certificate job failure")
		return
	}
	w.Log.Error().Err(cause).Str("job_id", job.ID.String()).Int("attempts", attempts).Msg("certificate delivery failed")
}
