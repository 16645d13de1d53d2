package certificates

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// CertificateData carries everything the rendered certificate displays.
type CertificateData struct {
	Name          string
	Amount        float64
	Date          string
	CertificateID string
	VerifyURL     string
}

// GeneratePDF renders the foundation's A4 donation certificate and returns
// the raw PDF bytes. Compression stays off so the text layer remains
// inspectable.
func GeneratePDF(data CertificateData) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetMargins(50, 50, 50)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()

	// Background and double border.
	pdf.SetFillColor(0xF8, 0xFA, 0xFC)
	pdf.Rect(0, 0, w, h, "F")
	pdf.SetDrawColor(0x1D, 0x4E, 0xD8)
	pdf.SetLineWidth(3)
	pdf.Rect(30, 30, w-60, h-60, "D")
	pdf.SetDrawColor(0xCB, 0xD5, 0xE1)
	pdf.SetLineWidth(1)
	pdf.Rect(42, 42, w-84, h-84, "D")

	// Issuer header.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0x1D, 0x4E, 0xD8)
	pdf.SetXY(50, 90)
	pdf.CellFormat(w-100, 20, "THANNMANNGAADI FOUNDATION", "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0x64, 0x74, 0x8B)
	pdf.SetXY(50, 112)
	pdf.CellFormat(w-100, 14, "Serving communities with care and dignity", "", 0, "C", false, 0, "")

	// Title.
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0x0F, 0x17, 0x2A)
	pdf.SetXY(50, 160)
	pdf.CellFormat(w-100, 34, "CERTIFICATE OF APPRECIATION", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(0x47, 0x55, 0x69)
	pdf.SetXY(50, 215)
	pdf.CellFormat(w-100, 18, "This certificate is proudly presented to", "", 0, "C", false, 0, "")

	// Recipient name, uppercased.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0x1D, 0x4E, 0xD8)
	pdf.SetXY(50, 250)
	pdf.CellFormat(w-100, 30, strings.ToUpper(data.Name), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0x47, 0x55, 0x69)
	pdf.SetXY(70, 295)
	pdf.MultiCell(w-140, 16,
		fmt.Sprintf("in grateful recognition of a generous donation of Rs. %s made towards the charitable programs of the Thannmanngaadi Foundation.", formatAmount(data.Amount)),
		"", "C", false)

	// Info panel.
	pdf.SetFillColor(0xEF, 0xF6, 0xFF)
	pdf.RoundedRect(100, 345, w-200, 90, 8, "1234", "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0x1E, 0x29, 0x3B)
	pdf.SetXY(120, 360)
	pdf.CellFormat(200, 14, "Certificate ID:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(220, 360)
	pdf.CellFormat(250, 14, data.CertificateID, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(120, 382)
	pdf.CellFormat(200, 14, "Amount:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(220, 382)
	pdf.CellFormat(250, 14, "Rs. "+formatAmount(data.Amount), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(120, 404)
	pdf.CellFormat(200, 14, "Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(220, 404)
	pdf.CellFormat(250, 14, data.Date, "", 0, "L", false, 0, "")

	// Verification QR code.
	if data.VerifyURL != "" {
		png, err := qrcode.Encode(data.VerifyURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode verification QR: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("verify-qr", w-175, 460, 90, 90, false, opts, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0x64, 0x74, 0x8B)
		pdf.SetXY(w-185, 552)
		pdf.CellFormat(110, 10, "Scan to verify", "", 0, "C", false, 0, "")
	}

	// Signature block.
	pdf.SetDrawColor(0x1E, 0x29, 0x3B)
	pdf.SetLineWidth(1)
	pdf.Line(100, 515, 260, 515)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0x1E, 0x29, 0x3B)
	pdf.SetXY(100, 522)
	pdf.CellFormat(160, 14, "Authorized Signatory", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0x64, 0x74, 0x8B)
	pdf.SetXY(100, 538)
	pdf.CellFormat(160, 12, "Thannmanngaadi Foundation", "", 0, "L", false, 0, "")

	// Footer disclaimer.
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(0x94, 0xA3, 0xB8)
	pdf.SetXY(70, h-130)
	pdf.MultiCell(w-140, 11,
		"This certificate is issued electronically by the Thannmanngaadi Foundation as an acknowledgement of the donation referenced above. Its authenticity can be confirmed online using the certificate ID or the QR code printed on it.",
		"", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
