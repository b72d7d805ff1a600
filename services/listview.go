package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"MedivaDesk/models"
	"MedivaDesk/phone"
)

// Sort fields and directions understood by the list views. Anything else
// leaves the relative order untouched.
const (
	SortByName    = "name"
	SortByCreated = "createdAt"

	OrderAsc    = "asc"
	OrderDesc   = "desc"
	OrderNewest = "newest"
	OrderOldest = "oldest"
)

const defaultPerPage = 10

// maxPageButtons caps the sliding pagination window.
const maxPageButtons = 5

var nameCollator = collate.New(language.Indonesian, collate.IgnoreCase)

// ListState is the transient state of one list view: search term, category
// filter, sort, and page position. It lives only as long as the view does.
// Every setter that can change the composition of the filtered set snaps
// the page back to 1.
type ListState struct {
	Search    string
	Gender    string
	SortField string
	SortOrder string
	Page      int
	PerPage   int
}

// NewPatientListState returns the patients view defaults: all genders,
// names A-Z, first page of ten.
func NewPatientListState() ListState {
	return ListState{
		Gender:    models.GenderAll,
		SortField: SortByName,
		SortOrder: OrderAsc,
		Page:      1,
		PerPage:   defaultPerPage,
	}
}

// NewDoctorListState returns the doctors view defaults: newest first.
func NewDoctorListState() ListState {
	return ListState{
		SortField: SortByCreated,
		SortOrder: OrderNewest,
		Page:      1,
		PerPage:   defaultPerPage,
	}
}

// SetSearch changes the search term and resets the page.
func (s *ListState) SetSearch(term string) {
	s.Search = term
	s.Page = 1
}

// SetGender changes the category filter and resets the page.
func (s *ListState) SetGender(gender string) {
	s.Gender = gender
	s.Page = 1
}

// SetSort changes the active sort and resets the page. The asc/desc orders
// select the name field, newest/oldest the creation timestamp, matching the
// single sort dropdown of the views.
func (s *ListState) SetSort(order string) {
	if order == OrderAsc || order == OrderDesc {
		s.SortField = SortByName
	} else {
		s.SortField = SortByCreated
	}
	s.SortOrder = order
	s.Page = 1
}

// SetPerPage changes the page size and resets the page.
func (s *ListState) SetPerPage(n int) {
	if n <= 0 {
		n = defaultPerPage
	}
	s.PerPage = n
	s.Page = 1
}

// SetPage moves to the requested page without touching anything else.
func (s *ListState) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.Page = n
}

// ListPage is one rendered page of a filtered and sorted collection.
type ListPage[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int   `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Window     []int `json:"window"`
}

// PresentPatients runs the fixed pipeline over the full patient collection:
// search filter, gender filter, name sort, pagination. A nil collection is
// zero records. An out-of-range page yields an empty Items slice; the page
// number is deliberately not clamped, the setters are how callers avoid a
// stale page.
func PresentPatients(patients []models.Patient, st ListState) ListPage[models.Patient] {
	return paginate(FilterSortPatients(patients, st), st)
}

// FilterSortPatients is the pipeline without the pagination stage, used by
// the PDF export which always covers the whole filtered set.
func FilterSortPatients(patients []models.Patient, st ListState) []models.Patient {
	filtered := make([]models.Patient, 0, len(patients))
	term := strings.ToLower(st.Search)
	for _, p := range patients {
		if term != "" && !anyFieldContains(patientFields(p), term) {
			continue
		}
		if st.Gender != "" && st.Gender != models.GenderAll && p.Gender != st.Gender {
			continue
		}
		filtered = append(filtered, p)
	}

	if st.SortField == SortByName && (st.SortOrder == OrderAsc || st.SortOrder == OrderDesc) {
		asc := st.SortOrder == OrderAsc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := nameCollator.CompareString(filtered[i].Name, filtered[j].Name)
			if asc {
				return c < 0
			}
			return c > 0
		})
	}

	return filtered
}

// PresentDoctors runs the pipeline over the doctor collection. Doctors have
// no category filter; sorting is by name or by creation time, where newest
// and oldest are the descending and ascending aliases.
func PresentDoctors(doctors []models.Doctor, st ListState) ListPage[models.Doctor] {
	return paginate(FilterSortDoctors(doctors, st), st)
}

// FilterSortDoctors is the doctor pipeline without pagination.
func FilterSortDoctors(doctors []models.Doctor, st ListState) []models.Doctor {
	filtered := make([]models.Doctor, 0, len(doctors))
	term := strings.ToLower(st.Search)
	for _, d := range doctors {
		if term != "" && !anyFieldContains(doctorFields(d), term) {
			continue
		}
		filtered = append(filtered, d)
	}

	switch {
	case st.SortField == SortByName && (st.SortOrder == OrderAsc || st.SortOrder == OrderDesc):
		asc := st.SortOrder == OrderAsc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := nameCollator.CompareString(filtered[i].Name, filtered[j].Name)
			if asc {
				return c < 0
			}
			return c > 0
		})
	case st.SortField == SortByCreated && (st.SortOrder == OrderNewest || st.SortOrder == OrderOldest):
		newest := st.SortOrder == OrderNewest
		sort.SliceStable(filtered, func(i, j int) bool {
			ti, tj := parseCreatedAt(filtered[i].CreatedAt), parseCreatedAt(filtered[j].CreatedAt)
			if newest {
				return ti.After(tj)
			}
			return ti.Before(tj)
		})
	}

	return filtered
}

func paginate[T any](filtered []T, st ListState) ListPage[T] {
	perPage := st.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page := st.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListPage[T]{
		Items:      filtered[start:end],
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
		Window:     PageWindow(page, totalPages),
	}
}

// PageWindow returns the page numbers to render as buttons: a window of at
// most five pages centered on the current one, shifted to stay within
// [1, totalPages].
func PageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := current + maxPageButtons/2
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxPageButtons {
		if start == 1 {
			end = start + maxPageButtons - 1
			if end > totalPages {
				end = totalPages
			}
		} else if end == totalPages {
			start = totalPages - maxPageButtons + 1
			if start < 1 {
				start = 1
			}
		}
	}

	window := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}
	return window
}

func anyFieldContains(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// patientFields is every field's string form as the search stage sees it;
// the contact is searched in display form, not the raw canonical one.
func patientFields(p models.Patient) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.BirthDate,
		p.Gender,
		p.Address,
		phone.Display(p.Contact),
		p.VisitDate,
		p.Complaint,
	}
}

func doctorFields(d models.Doctor) []string {
	return []string{
		strconv.Itoa(d.ID),
		d.Name,
		d.Specialization,
		phone.Display(d.Contact),
		d.Photo,
		d.CreatedAt,
	}
}

// parseCreatedAt reads the store's timestamp string; records the store
// never stamped sort as the zero time, i.e. oldest.
func parseCreatedAt(v string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
