package handler

import (
	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService HospitalServicer
}

func NewHospitalHandler(hospitalService HospitalServicer) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// HospitalRequest is the create payload. Rules are checked by the model.
type HospitalRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Province   string `json:"province"`
	PostalCode string `json:"postalcode"`
	Tel        string `json:"tel"`
	Region     string `json:"region"`
	VacCenter  bool   `json:"vacCenter"`
}

func (r HospitalRequest) toModel() *models.Hospital {
	return &models.Hospital{
		Name:       r.Name,
		Address:    r.Address,
		District:   r.District,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Tel:        r.Tel,
		Region:     r.Region,
		VacCenter:  r.VacCenter,
	}
}

// HospitalUpdateRequest carries only the fields the client sent
type HospitalUpdateRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	District   *string `json:"district"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postalcode"`
	Tel        *string `json:"tel"`
	Region     *string `json:"region"`
	VacCenter  *bool   `json:"vacCenter"`
}

func (r HospitalUpdateRequest) toPatch() service.HospitalPatch {
	return service.HospitalPatch{
		Name:       r.Name,
		Address:    r.Address,
		District:   r.District,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Tel:        r.Tel,
		Region:     r.Region,
		VacCenter:  r.VacCenter,
	}
}

// HospitalView is a hospital as returned to clients. Appointments is
// present only when the request asked for it.
type HospitalView struct {
	models.Hospital
	Appointments *[]models.Appointment `json:"appointments,omitempty"`
}

func toView(h *models.Hospital, includeAppointments bool) HospitalView {
	v := HospitalView{Hospital: *h}
	if includeAppointments {
		appts := h.Appointments
		if appts == nil {
			appts = []models.Appointment{}
		}
		v.Appointments = &appts
	}
	return v
}

func toViews(hospitals []models.Hospital, includeAppointments bool) []HospitalView {
	views := make([]HospitalView, 0, len(hospitals))
	for i := range hospitals {
		views = append(views, toView(&hospitals[i], includeAppointments))
	}
	return views
}

func wantsAppointments(c *gin.Context) bool {
	return c.Query("include") == "appointments"
}

// GetAllHospitals lists every hospital
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	include := wantsAppointments(c)
	hospitals, err := h.hospitalService.GetAllHospitals(c.Request.Context(), include)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": toViews(hospitals, include),
		"count":     len(hospitals),
	})
}

// GetVacCenters lists the vaccination centers
func (h *HospitalHandler) GetVacCenters(c *gin.Context) {
	include := wantsAppointments(c)
	hospitals, err := h.hospitalService.GetVacCenters(c.Request.Context(), include)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": toViews(hospitals, include),
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	include := wantsAppointments(c)
	hospital, err := h.hospitalService.GetHospitalByID(c.Request.Context(), c.Param("id"), include)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, toView(hospital, include))
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hospital := req.toModel()
	if err := h.hospitalService.CreateHospital(c.Request.Context(), hospital, c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, toView(hospital, false))
}

// UpdateHospital updates an existing hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var req HospitalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(c.Request.Context(), c.Param("id"), req.toPatch(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, toView(hospital, false))
}

// DeleteHospital deletes a hospital and its appointments (admin only)
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	if err := h.hospitalService.DeleteHospital(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}
