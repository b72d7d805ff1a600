package models

// NamePrefix is the literal every doctor name must keep.
const NamePrefix = "Dr. "

// Doctor mirrors the record shape exchanged with the storage API. Photo is
// the server-side path of the uploaded file; CreatedAt is assigned by the
// store.
type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Contact        string `json:"contact"`
	Photo          string `json:"photo"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// DoctorForm is the add/edit form payload. The photo itself rides the
// multipart body, CurrentPhoto carries the existing path on edit so the
// store knows which file to replace.
type DoctorForm struct {
	Name           string `form:"name"`
	Specialization string `form:"specialization"`
	Contact        string `form:"contact"`
	CurrentPhoto   string `form:"currentPhoto"`
}
