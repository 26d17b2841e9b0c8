package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/config"
	"github.com/shenikar/campus_panic_system/internal/dispatch"
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

type Handler struct {
	alertService    service.AlertService
	geofenceService service.GeofenceService
	subscriber      dispatch.Subscriber
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	alertService service.AlertService,
	geofenceService service.GeofenceService,
	subscriber dispatch.Subscriber,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		alertService:    alertService,
		geofenceService: geofenceService,
		subscriber:      subscriber,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondDomainError переводит доменные ошибки в HTTP-статусы: конфликт
// guarded-перехода - 409 (клиенту следует перечитать состояние), отсутствие
// сущности - 404, невалидный полигон - 400, остальное - 500.
func respondDomainError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case models.Conflict(err):
		log.WithError(err).Warn("Conflict rejection")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlertNotFound),
		errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrSiteNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, geo.ErrInvalidPolygon), errors.Is(err, geo.ErrInvalidPoint):
		log.WithError(err).Warn("Geometry validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a panic alert
// @Description Raise a new panic alert for the authenticated requester. Rejected with 409 when an open alert already exists.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Open alert already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	userID, role := currentUser(c)
	log := h.logger.WithField("method", "createAlert").WithField("requester", userID)

	var input CreateAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), userID, role, service.CreateAlertInput{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		AccuracyM: input.AccuracyM,
		Equipment: input.Equipment,
		PhotoPath: input.PhotoPath,
	})
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary List open alerts
// @Description List all open (ACTIVE and ATTENDING) alerts, newest first. Operator only.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/open [get]
func (h *Handler) listOpenAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listOpenAlerts")

	alerts, err := h.alertService.ListOpenAlerts(c.Request.Context())
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get own open alert
// @Description Return the requester's own non-closed alert, 404 when none exists.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open alert"
// @Router /alerts/own [get]
func (h *Handler) getOwnAlert(c *gin.Context) {
	userID, _ := currentUser(c)
	log := h.logger.WithField("method", "getOwnAlert").WithField("requester", userID)

	alert, err := h.alertService.GetOwnAlert(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Claim an alert
// @Description Transition ACTIVE -> ATTENDING. Exactly one of two racing operators wins, the loser gets 409.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already claimed or closed"
// @Router /alerts/{id}/claim [post]
func (h *Handler) claimAlert(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	operatorID, _ := currentUser(c)
	log := h.logger.WithField("method", "claimAlert").WithField("alert_id", alertID)

	alert, err := h.alertService.ClaimAlert(c.Request.Context(), alertID, operatorID)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Close an alert
// @Description Transition ACTIVE or ATTENDING -> CLOSED with optional notes.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param close body CloseAlertRequest false "Close request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already closed"
// @Router /alerts/{id}/close [post]
func (h *Handler) closeAlert(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	operatorID, _ := currentUser(c)
	log := h.logger.WithField("method", "closeAlert").WithField("alert_id", alertID)

	// Тело запроса необязательно. Разбираем его всегда, чтобы не потерять
	// заметки при chunked-передаче (ContentLength = -1), и только io.EOF
	// трактуем как отсутствие тела.
	var input CloseAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	alert, err := h.alertService.CloseAlert(c.Request.Context(), alertID, operatorID, input.Notes)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Report a false alert
// @Description Close the alert as misuse and increment the requester's false alert counter in one atomic unit.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already closed"
// @Router /alerts/{id}/false [post]
func (h *Handler) reportFalseAlert(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	operatorID, _ := currentUser(c)
	log := h.logger.WithField("method", "reportFalseAlert").WithField("alert_id", alertID)

	alert, err := h.alertService.ReportFalseAlert(c.Request.Context(), alertID, operatorID)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Stream alert mutations
// @Description Server-sent events stream of alert mutations. Optional alert_id query narrows the stream to one alert.
// @Tags Alerts
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param alert_id query string false "Alert ID filter"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string "Invalid alert_id"
// @Router /alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts")

	var events <-chan dispatch.AlertEvent
	var cancel func()
	var err error

	if raw := c.Query("alert_id"); raw != "" {
		alertID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert_id"})
			return
		}
		events, cancel, err = h.subscriber.SubscribeAlert(c.Request.Context(), alertID)
	} else {
		events, cancel, err = h.subscriber.SubscribeAll(c.Request.Context())
	}
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to alert events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("alert", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary Alert history by cedula
// @Description Find a requester by cedula and return their alert history, newest first. Operator only.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param cedula query string true "Requester cedula"
// @Param limit query int false "Max rows" default(200)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} map[string]string "Missing cedula"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /alerts/history [get]
func (h *Handler) alertHistory(c *gin.Context) {
	log := h.logger.WithField("method", "alertHistory")

	cedula := c.Query("cedula")
	if cedula == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cedula is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	profile, alerts, err := h.alertService.AlertHistory(c.Request.Context(), cedula, limit)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{
		Profile: ModelToProfileResponse(profile),
		Alerts:  ModelsToAlertResponses(alerts),
	})
}

// @Summary Get own profile
// @Description Return the authenticated user's profile, including the false alert counter.
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID, _ := currentUser(c)
	log := h.logger.WithField("method", "getProfile").WithField("user_id", userID)

	profile, err := h.alertService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Get alert statistics
// @Description Count of distinct requesters with alerts inside the configured time window.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.alertService.GetStats(c.Request.Context())
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{RequesterCount: count})
}

// @Summary Create a site
// @Description Create an organizational site. Admin only.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param site body CreateSiteRequest true "Site creation request"
// @Success 201 {object} SiteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /sites [post]
func (h *Handler) createSite(c *gin.Context) {
	log := h.logger.WithField("method", "createSite")

	var input CreateSiteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := &models.Site{
		Name:       input.Name,
		City:       input.City,
		Address:    input.Address,
		Department: input.Department,
	}
	if err := h.geofenceService.CreateSite(c.Request.Context(), site); err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSiteResponse(site))
}

// @Summary List sites
// @Description List active organizational sites.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SiteResponse
// @Router /sites [get]
func (h *Handler) listSites(c *gin.Context) {
	log := h.logger.WithField("method", "listSites")

	sites, err := h.geofenceService.ListSites(c.Request.Context())
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSiteResponses(sites))
}

// @Summary Replace a site geofence
// @Description Replace the site's active boundary polygon wholesale. The ring must be closed and have at least 4 vertices. Admin only.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Site ID"
// @Param geofence body UpsertGeofenceRequest true "Geofence polygon"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid site ID or degenerate polygon"
// @Failure 404 {object} map[string]string "Site not found"
// @Router /sites/{id}/geofence [put]
func (h *Handler) upsertGeofence(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site ID"})
		return
	}
	log := h.logger.WithField("method", "upsertGeofence").WithField("site_id", siteID)

	var input UpsertGeofenceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fence, err := h.geofenceService.UpsertForSite(c.Request.Context(), siteID, input.Polygon)
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(fence))
}

// @Summary List active geofences
// @Description List all active campus boundary polygons.
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} GeofenceResponse
// @Router /geofences [get]
func (h *Handler) listGeofences(c *gin.Context) {
	log := h.logger.WithField("method", "listGeofences")

	fences, err := h.geofenceService.ListActive(c.Request.Context())
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGeofenceResponses(fences))
}

// @Summary Check a point against campus geofences
// @Description Return the active geofences containing the point.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	log := h.logger.WithField("method", "checkLocation")

	var input LocationCheckRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fences, err := h.geofenceService.CheckLocation(c.Request.Context(), geo.Point{Lon: *input.Longitude, Lat: *input.Latitude})
	if err != nil {
		respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LocationCheckResponse{
		OnCampus:  len(fences) > 0,
		Geofences: ModelsToGeofenceResponses(fences),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
