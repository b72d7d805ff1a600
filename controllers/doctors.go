package controllers

import (
	"log"
	"net/http"
	"strconv"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"MedivaDesk/models"
	"MedivaDesk/services"
)

// DoctorController serves the doctors list and its add/edit forms. Doctor
// submissions are multipart because of the photo upload.
type DoctorController struct {
	API    *services.Client
	Rules  services.FormRules
	Alerts Notifier
}

func (ctl *DoctorController) Register(router *gin.RouterGroup) {
	doctors := router.Group("/doctors")
	{
		doctors.GET("", ctl.List)
		doctors.GET("/export", ctl.ExportPDF)
		doctors.GET("/:id", ctl.Fetch)
		doctors.GET("/:id/edit", ctl.EditForm)
		doctors.POST("", ctl.Create)
		doctors.PUT("/:id", ctl.Update)
		doctors.DELETE("/:id", ctl.Delete)
	}
}

// List renders one page of the doctor collection. Unlike the patients
// list, a storage API failure here surfaces as an error dialog.
func (ctl *DoctorController) List(c *gin.Context) {
	st := listStateFromQuery(c, services.NewDoctorListState())

	doctors, err := ctl.API.ListDoctors(c.Request.Context())
	if err != nil {
		log.Println("Gagal mengambil data dokter:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal mengambil data dokter: "+services.ErrorMessage(err, err.Error()))
		return
	}

	c.JSON(http.StatusOK, util.SuccessResponse(services.PresentDoctors(doctors, st)))
}

func (ctl *DoctorController) Fetch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	doctor, err := ctl.API.GetDoctor(c.Request.Context(), id)
	if err != nil {
		c.JSON(upstreamStatus(err), util.FailedResponse(err))
		return
	}

	c.JSON(http.StatusOK, util.SuccessResponse(doctor))
}

// EditForm seeds the edit form from the stored record. The contact comes
// back in canonical form and the stored photo path rides along so a
// submission without a new file keeps the old one.
func (ctl *DoctorController) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	doctor, err := ctl.API.GetDoctor(c.Request.Context(), id)
	if err != nil {
		log.Println("Gagal mengambil data dokter:", err)
		c.JSON(upstreamStatus(err), gin.H{
			"icon":     "error",
			"title":    "Gagal!",
			"message":  "Gagal mengambil data dokter: " + services.ErrorMessage(err, err.Error()),
			"redirect": "/doctors",
		})
		return
	}

	form := models.DoctorForm{
		Name:           services.EnsureDoctorName(doctor.Name),
		Specialization: doctor.Specialization,
		Contact:        ctl.Rules.Phone.Normalize(doctor.Contact),
		CurrentPhoto:   doctor.Photo,
	}

	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"id": doctor.ID, "form": form}))
}

func (ctl *DoctorController) Create(c *gin.Context) {
	form, photo, errs := ctl.bindForm(c, false)
	if form == nil {
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.CreateDoctor(c.Request.Context(), *form, photo); err != nil {
		log.Println("Gagal menambahkan data dokter:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal menambahkan data dokter: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Data dokter berhasil ditambahkan!")
}

func (ctl *DoctorController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	form, photo, errs := ctl.bindForm(c, true)
	if form == nil {
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := ctl.API.UpdateDoctor(c.Request.Context(), id, *form, photo); err != nil {
		log.Println("Gagal memperbarui data dokter:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal memperbarui data dokter: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Berhasil!", "Data dokter berhasil diperbarui!")
}

func (ctl *DoctorController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	if !ctl.Alerts.Confirm(c, "Apakah Anda yakin?", "Data yang terhapus akan hilang secara permanen !") {
		return
	}

	if err := ctl.API.DeleteDoctor(c.Request.Context(), id); err != nil {
		log.Println("Gagal menghapus dokter:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal menghapus dokter: "+services.ErrorMessage(err, err.Error()))
		return
	}

	ctl.Alerts.NotifySuccess(c, "Dihapus!", "Data dokter berhasil dihapus.")
}

func (ctl *DoctorController) ExportPDF(c *gin.Context) {
	st := listStateFromQuery(c, services.NewDoctorListState())

	doctors, err := ctl.API.ListDoctors(c.Request.Context())
	if err != nil {
		log.Println("Gagal mengambil data dokter:", err)
		ctl.Alerts.NotifyError(c, upstreamStatus(err), "Gagal!",
			"Gagal mengambil data dokter: "+services.ErrorMessage(err, err.Error()))
		return
	}

	pdf, err := services.DoctorsPDF(services.FilterSortDoctors(doctors, st))
	if err != nil {
		log.Println("Gagal membuat PDF dokter:", err)
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.DoctorsPDFName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// bindForm reads the multipart submission, normalizes the name and contact
// the way the form inputs do, and validates. A nil form means the bind
// failed and the response is already written. isUpdate admits the stored
// photo path as a substitute for a fresh upload.
func (ctl *DoctorController) bindForm(c *gin.Context, isUpdate bool) (*models.DoctorForm, *services.Upload, map[string]string) {
	var form models.DoctorForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return nil, nil, nil
	}
	form.Name = services.EnsureDoctorName(form.Name)
	form.Contact = ctl.Rules.Phone.Normalize(form.Contact)
	if !isUpdate {
		form.CurrentPhoto = ""
	}

	var photo *services.Upload
	file, err := c.FormFile("photo")
	if err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return nil, nil, nil
		}
		photo = &services.Upload{Filename: file.Filename, Content: src}
	}

	errs := ctl.Rules.ValidateDoctor(form, photo != nil, isUpdate && form.CurrentPhoto != "")
	return &form, photo, errs
}
