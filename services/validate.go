package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"MedivaDesk/models"
	"MedivaDesk/phone"
)

// MinVisitDate is the fixed lower bound for patient visit dates.
const MinVisitDate = "2025-01-01"

// maxBirthYear caps the birth-date upper bound regardless of the clock.
const maxBirthYear = 2025

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FormRules validates the front-desk forms. Each Validate call returns the
// full field→message map so every violation can be shown at once; an absent
// key means the field is valid. Dates are compared as ISO strings, which
// orders correctly because the format is zero-padded and fixed-width.
type FormRules struct {
	Phone phone.Rule
}

// MaxBirthDate is today's date with the year capped at 2025, the upper
// bound for patient birth dates.
func MaxBirthDate(now time.Time) string {
	year := now.Year()
	if year > maxBirthYear {
		year = maxBirthYear
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(now.Month()), now.Day())
}

// ContactMessage is the inline error shown for a malformed contact number.
func (r FormRules) ContactMessage() string {
	return fmt.Sprintf("Nomor kontak harus diawali +62 dan terdiri dari %d digit", r.Phone.MaxLen())
}

// ValidatePatient checks an add/edit patient form against the clock-derived
// birth-date bound. All fields are required.
func (r FormRules) ValidatePatient(f models.PatientForm, now time.Time) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Nama wajib diisi"
	}
	if f.BirthDate == "" {
		errs["birth_date"] = "Tanggal lahir wajib diisi"
	} else if f.BirthDate > MaxBirthDate(now) {
		errs["birth_date"] = "Tanggal lahir tidak boleh lebih dari tahun 2025."
	}
	if f.Gender != models.GenderMale && f.Gender != models.GenderFemale {
		errs["gender"] = "Jenis kelamin wajib dipilih"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Alamat wajib diisi"
	}
	if f.VisitDate == "" {
		errs["visit_date"] = "Tanggal kunjungan wajib diisi"
	} else if f.VisitDate < MinVisitDate {
		errs["visit_date"] = "Tanggal kunjungan harus dimulai dari tahun 2025."
	}
	if strings.TrimSpace(f.Complaint) == "" {
		errs["complaint"] = "Keluhan wajib diisi"
	}
	if !r.Phone.Valid(f.Contact) {
		errs["contact"] = r.ContactMessage()
	}

	return errs
}

// ValidateDoctor checks an add/edit doctor form. hasPhoto reports whether a
// file rides this submission; hasCurrentPhoto whether the record already has
// one, which exempts the edit form from the upload requirement. A doctor
// contact may be left empty but must be canonical once present.
func (r FormRules) ValidateDoctor(f models.DoctorForm, hasPhoto, hasCurrentPhoto bool) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(f.Name)
	if name == "Dr." {
		errs["name"] = "Nama dokter wajib diisi"
	} else if len(name) <= len(models.NamePrefix) {
		errs["name"] = "Nama dokter tidak boleh kosong"
	}
	if strings.TrimSpace(f.Specialization) == "" {
		errs["specialization"] = "Spesialisasi wajib diisi"
	}
	if !hasCurrentPhoto && !hasPhoto {
		errs["photo"] = "Foto wajib diunggah"
	}
	if f.Contact != "" && !r.Phone.Valid(f.Contact) {
		errs["contact"] = r.ContactMessage()
	}

	return errs
}

// ValidateLogin checks the login form before any credentials leave the
// process.
func ValidateLogin(email, password string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email wajib diisi."
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Format email tidak valid."
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password wajib diisi."
	}

	return errs
}

// ValidateForgotPassword checks the reset-link request form.
func ValidateForgotPassword(email string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email wajib diisi."
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Format email tidak valid."
	}

	return errs
}

// ValidateResetPassword checks the reset form: the token must be present
// and both password fields must match.
func ValidateResetPassword(token, newPassword, confirmPassword string) map[string]string {
	errs := map[string]string{}

	if token == "" {
		errs["token"] = "Token wajib diisi"
	}
	if strings.TrimSpace(newPassword) == "" {
		errs["new_password"] = "Password wajib diisi."
	} else if newPassword != confirmPassword {
		errs["confirm_password"] = "Password tidak cocok."
	}

	return errs
}

// EnsureDoctorName re-inserts the "Dr. " prefix whenever an edit removed
// it, mirroring what the name field does on every keystroke.
func EnsureDoctorName(v string) string {
	if strings.HasPrefix(v, models.NamePrefix) {
		return v
	}
	return models.NamePrefix + strings.Replace(v, models.NamePrefix, "", 1)
}
