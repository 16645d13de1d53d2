package certificates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDF_ContainsTitleAndDetails(t *testing.T) {
	pdf, err := GeneratePDF(CertificateData{
		Name:          "Asha Nair",
		Amount:        499,
		Date:          "15 Aug 2026",
		CertificateID: "CERT-1755259200000",
		VerifyURL:     "https://ngo-admin-thannmann.onrender.com/verify/CERT-1755259200000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// Uncompressed output keeps the text layer readable.
	assert.True(t, bytes.Contains(pdf, []byte("CERTIFICATE OF APPRECIATION")))
	assert.True(t, bytes.Contains(pdf, []byte("ASHA NAIR")))
	assert.True(t, bytes.Contains(pdf, []byte("499")))
	assert.True(t, bytes.Contains(pdf, []byte("CERT-1755259200000")))
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGeneratePDF_NoQRWithoutVerifyURL(t *testing.T) {
	pdf, err := GeneratePDF(CertificateData{
		Name:          "Ravi",
		Amount:        100,
		Date:          "01 Jan 2026",
		CertificateID: "CERT-1",
	})
	require.NoError(t, err)
	assert.False(t, bytes.Contains(pdf, []byte("Scan to verify")))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "499", formatAmount(499))
	assert.Equal(t, "499.5", formatAmount(499.5))
}

func TestNewCertificateID(t *testing.T) {
	id := NewCertificateID()
	assert.True(t, strings.HasPrefix(id, "CERT-"))
	assert.Greater(t, len(id), len("CERT-"))
}
