package infra

// pdf.go — Printable nota generation using go-pdf/fpdf.
// A5 landscape document with:
//   - Store header and nota date
//   - Customer name and address
//   - Item table (nama barang, kadar, kode, biji, berat, harga/gram, jumlah)
//   - Bold total and the terbilang line (legal spelled-out amount)
//
// The output file is saved to storagePath/nota_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateNotaPDF renders a nota to disk and returns the file path.
// storagePath is created if needed.
func GenerateNotaPDF(nota *model.Nota, storeName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("nota_%s.pdf", nota.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, storeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Nota Penjualan", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Customer block ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, "Tanggal: "+nota.Tanggal.Format("02/01/2006"), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Nama: "+nota.Nama, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Alamat: "+nota.Alamat, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ────────────────────────────────────────────────────────────
	colNama := contentW * 0.26
	colKadar := contentW * 0.10
	colKode := contentW * 0.08
	colBiji := contentW * 0.08
	colBerat := contentW * 0.12
	colHarga := contentW * 0.18
	colJumlah := contentW * 0.18

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colNama, 6, "Nama Barang", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colKadar, 6, "Kadar", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colKode, 6, "Kode", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colBiji, 6, "Biji", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colBerat, 6, "Berat (g)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colHarga, 6, "Harga/gram", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colJumlah, 6, "Jumlah", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range nota.Items {
		nama := item.NamaBarang
		if len(nama) > 28 {
			nama = nama[:25] + "..."
		}
		pdf.CellFormat(colNama, 6, nama, "", 0, "L", false, 0, "")
		pdf.CellFormat(colKadar, 6, item.Kadar, "", 0, "C", false, 0, "")
		pdf.CellFormat(colKode, 6, item.ModelKode, "", 0, "C", false, 0, "")
		pdf.CellFormat(colBiji, 6, fmt.Sprintf("%d", item.Biji), "", 0, "C", false, 0, "")
		pdf.CellFormat(colBerat, 6, item.Berat.StringFixed(3), "", 0, "R", false, 0, "")
		pdf.CellFormat(colHarga, 6, formatRupiah(item.HargaPerGram), "", 0, "R", false, 0, "")
		pdf.CellFormat(colJumlah, 6, formatRupiah(item.Jumlah), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Total + terbilang ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW-colJumlah, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colJumlah, 7, formatRupiah(nota.TotalAmount), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(contentW, 5, "Terbilang: "+nota.Terbilang, "", "L", false)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// formatRupiah renders an amount as "Rp 1.234.567" (no subunits).
func formatRupiah(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
