package services

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"MedivaDesk/models"
	"MedivaDesk/phone"
)

// File names of the saved exports.
const (
	PatientsPDFName = "data_pasien.pdf"
	DoctorsPDFName  = "data_dokter.pdf"
)

// FormatDateDDMMYYYY renders a stored date string for display. Anything
// unparseable renders empty, same as the views.
func FormatDateDDMMYYYY(v string) string {
	if v == "" {
		return ""
	}
	t := parseCreatedAt(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateYYYYMMDD renders a stored date string the way the edit form
// inputs expect it.
func FormatDateYYYYMMDD(v string) string {
	if v == "" {
		return ""
	}
	t := parseCreatedAt(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// PatientsPDF renders the currently filtered and sorted patient collection
// as a table. The whole set is exported, never a single page of it.
func PatientsPDF(patients []models.Patient) ([]byte, error) {
	header := []string{"No.", "Nama", "Tanggal Lahir", "Jenis Kelamin", "Alamat", "Kontak", "Tanggal Kunjungan", "Keluhan"}
	widths := []float64{10, 30, 24, 24, 34, 24, 24, 12}

	rows := make([][]string, 0, len(patients))
	for i, p := range patients {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Name,
			FormatDateDDMMYYYY(p.BirthDate),
			p.Gender,
			p.Address,
			phone.Display(p.Contact),
			FormatDateDDMMYYYY(p.VisitDate),
			p.Complaint,
		})
	}

	return tablePDF("Data Pasien Mediva Hospital", header, widths, rows)
}

// DoctorsPDF renders the doctor collection; the photo column reports
// availability, not the stored path.
func DoctorsPDF(doctors []models.Doctor) ([]byte, error) {
	header := []string{"No.", "Nama", "Spesialisasi", "Kontak", "Foto"}
	widths := []float64{12, 60, 50, 35, 25}

	rows := make([][]string, 0, len(doctors))
	for i, d := range doctors {
		photo := "Tidak Ada"
		if d.Photo != "" {
			photo = "Tersedia"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.Name,
			d.Specialization,
			phone.Display(d.Contact),
			photo,
		})
	}

	return tablePDF("Data Dokter Mediva Hospital", header, widths, rows)
}

// tablePDF lays out the shared export style: a titled A4 page, bold header
// row on a light fill, small zebra-striped body rows.
func tablePDF(title string, header []string, widths []float64, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(248, 249, 250)
	pdf.SetTextColor(52, 58, 64)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for r, row := range rows {
		fill := r%2 == 1
		if fill {
			pdf.SetFillColor(242, 242, 242)
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
