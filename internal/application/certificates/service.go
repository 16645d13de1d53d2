package certificates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("certificate not found")

// Service issues and looks up donation certificates. VerifyBase is the
// public URL prefix embedded in each certificate's QR code.
type Service struct {
	DB         *gorm.DB
	VerifyBase string
}

// NewCertificateID mints a certificate ID from the current epoch millis.
func NewCertificateID() string {
	return fmt.Sprintf("CERT-%d", time.Now().UnixMilli())
}

// VerifyURL returns the public verification URL for a certificate ID.
func (s *Service) VerifyURL(certificateID string) string {
	return fmt.Sprintf("%s/verify/%s", s.VerifyBase, certificateID)
}

// Issue persists a certificate record and returns it together with the
// rendered PDF. The record is written first so a verification lookup
// succeeds even if the email later fails.
func (s *Service) Issue(ctx context.Context, donationID *uuid.UUID, name, email string, amount float64) (*domain.Certificate, []byte, error) {
	cert := &domain.Certificate{
		CertificateID: NewCertificateID(),
		DonationID:    donationID,
		Name:          name,
		Email:         email,
		Amount:        amount,
		IssuedAt:      time.Now(),
	}
	cert.VerifyURL = s.VerifyURL(cert.CertificateID)

	if err := s.DB.WithContext(ctx).Create(cert).Error; err != nil {
		return nil, nil, err
	}

	pdf, err := GeneratePDF(CertificateData{
		Name:          cert.Name,
		Amount:        cert.Amount,
		Date:          cert.IssuedAt.Format("02 Jan 2006"),
		CertificateID: cert.CertificateID,
		VerifyURL:     cert.VerifyURL,
	})
	if err != nil {
		return nil, nil, err
	}
	return cert, pdf, nil
}

// Get looks up a certificate by its public ID.
func (s *Service) Get(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	var cert domain.Certificate
	if err := s.DB.WithContext(ctx).Where("certificate_id = ?", certificateID).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}
