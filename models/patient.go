package models

// Patient mirrors the record shape exchanged with the storage API. Dates
// travel as strings exactly as the API serializes them.
type Patient struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	VisitDate string `json:"visit_date"`
	Complaint string `json:"complaint"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Gender options accepted by the patient forms and the list filter.
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
	GenderAll    = "Semua"
)

// PatientForm is the add/edit form payload before validation. Dates are
// ISO YYYY-MM-DD as produced by the date inputs.
type PatientForm struct {
	Name      string `json:"name" form:"name"`
	BirthDate string `json:"birth_date" form:"birth_date"`
	Gender    string `json:"gender" form:"gender"`
	Address   string `json:"address" form:"address"`
	Contact   string `json:"contact" form:"contact"`
	VisitDate string `json:"visit_date" form:"visit_date"`
	Complaint string `json:"complaint" form:"complaint"`
}
