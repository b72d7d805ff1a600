package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"MedivaDesk/models"
	"MedivaDesk/services"
)

// PatientController serves the patients list and its add/edit forms. The
// storage API owns the records; every mutation is normalized and validated
// here first so nothing malformed ever leaves the desk.
type PatientController struct {
	API    *services.Client
	Rules  services.FormRules
	Alerts Notifier
}

func (ctl *PatientController) Register(router *gin.RouterGroup) {
	patients := router.Group("/patients")
	{
		patients.GET("", ctl.List)
		patients.GET("/export", ctl.ExportPDF)
		patients.GET("/:id", ctl.Fetch)
		patients.GET("/:id/edit", ctl.EditForm)
		patients.POST("", ctl.Create)
		patients.PUT("/:id", ctl.Update)
		patients.DELETE("/:id", ctl.Delete)
	}
}

// List renders one page of the filtered and sorted collection. A storage
// API failure degrades to an empty list rather than an error page.
func (ctl *PatientController) List(c *gin.Context) {
	st := listStateFromQuery(c, services.NewPatientListState())

	patients, err := ctl.API.ListPatients(c.Request.Context())
	if err != nil {
		log.Println("Gagal mengambil data pasien:", err)
		patients = nil
	}

	c.JSON(http.StatusOK, util.SuccessResponse(services.PresentPatients(patients, st)))
}

func (ctl *PatientController) Fetch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	patient, err := ctl.API.GetPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(upstreamStatus(err), util.FailedResponse(err))
		return
	}

	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

// EditForm seeds the edit form from the stored record: dates trimmed to
// the date-input format and the contact brought back to canonical form.
func (ctl *PatientController) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	patient, err := ctl.API.GetPatient(c.Request.Context(), id)
	if err != nil {
		log.Println("Gagal mengambil data pasien:", err)
		c.JSON(upstreamStatus(err), gin.H{
			"icon":     "error",
			"title":    "Gagal!",
			"message":  "Gagal mengambil data pasien: " + services.ErrorMessage(err, err.Error()),
			"redirect": "/patients",
		})
		return
	}

	form := models.PatientForm{
		Name:      patient.Name,
		BirthDate: services.FormatDateYYYYMMDD(patient.BirthDate),
		Gender:    patient.Gender,
		Address:   patient.Address,
		Contact:   ctl.Rules.Phone.Normalize(patient.Contact),
		VisitDate: services.FormatDateYYYYMMDD(patient.VisitDate),
		Complaint: patient.Complaint,
	}

	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"id": patient.ID, "form": form}))
}

func (ctl *PatientController) Create(c *gin.Context) {
	var form models.PatientForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	form.Contact = ctl.Rules.Phone.Normalize(form.Contact)

	if errs := ctl.Rules.ValidatePatient(form, time.Now()); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.CreatePatient(c.Request.Context(), form); err != nil {
		log.Println("Gagal menambahkan data pasien:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal menambahkan data pasien: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Data pasien berhasil ditambahkan!")
}

func (ctl *PatientController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	var form models.PatientForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	form.Contact = ctl.Rules.Phone.Normalize(form.Contact)

	if errs := ctl.Rules.ValidatePatient(form, time.Now()); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.UpdatePatient(c.Request.Context(), id, form); err != nil {
		log.Println("Gagal memperbarui data pasien:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal memperbarui data pasien: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Data pasien berhasil diperbarui!")
}

// Delete removes a record once the caller confirms; without confirmation
// only the prompt is returned and nothing is touched.
func (ctl *PatientController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	if !ctl.Alerts.Confirm(c, "Apakah Anda yakin?", "Data yang terhapus akan hilang secara permanen !") {
		return
	}

	if err := ctl.API.DeletePatient(c.Request.Context(), id); err != nil {
		log.Println("Gagal menghapus pasien:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal menghapus pasien: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Dihapus!", "Data pasien berhasil dihapus.")
}

// ExportPDF streams the whole filtered and sorted collection as a PDF
// table, never just the visible page.
func (ctl *PatientController) ExportPDF(c *gin.Context) {
	st := listStateFromQuery(c, services.NewPatientListState())

	patients, err := ctl.API.ListPatients(c.Request.Context())
	if err != nil {
		log.Println("Gagal mengambil data pasien:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal mengambil data pasien: "+services.ErrorMessage(err, err.Error()))
		return
	}

	pdf, err := services.PatientsPDF(services.FilterSortPatients(patients, st))
	if err != nil {
		log.Println("Gagal membuat PDF pasien:", err)
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.PatientsPDFName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
