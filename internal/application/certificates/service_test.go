package certificates

import (
	"context"
	"testing"

	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCertService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Certificate{}))
	return &Service{DB: db, VerifyBase: "https://example.org"}
}

func TestIssue_PersistsAndRenders(t *testing.T) {
	svc := setupCertService(t)

	cert, pdf, err := svc.Issue(context.Background(), nil, "Meera Pillai", "meera@example.com", 1500)
	require.NoError(t, err)
	require.NotNil(t, cert)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "https://example.org/verify/"+cert.CertificateID, cert.VerifyURL)

	got, err := svc.Get(context.Background(), cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, "Meera Pillai", got.Name)
	assert.Equal(t, float64(1500), got.Amount)
}

func TestGet_NotFound(t *testing.T) {
	svc := setupCertService(t)

	_, err := svc.Get(context.Background(), "CERT-0")
	assert.ErrorIs(t, err, ErrNotFound)
}
