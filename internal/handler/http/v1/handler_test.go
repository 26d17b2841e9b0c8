package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/campus_panic_system/internal/config"
	dispatch_mocks "github.com/shenikar/campus_panic_system/internal/dispatch/mocks"
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
	"github.com/shenikar/campus_panic_system/internal/service/mocks"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

type handlerMocks struct {
	alerts     *mocks.MockAlertService
	geofences  *mocks.MockGeofenceService
	subscriber *dispatch_mocks.MockSubscriber
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		alerts:     mocks.NewMockAlertService(ctrl),
		geofences:  mocks.NewMockGeofenceService(ctrl),
		subscriber: dispatch_mocks.NewMockSubscriber(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.alerts, m.geofences, m.subscriber, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// identityHeaders собирает заголовки API-ключа и идентичности для запроса.
func identityHeaders(userID uuid.UUID, role string) map[string]string {
	return map[string]string{
		"X-API-Key":   "test-api-key",
		"X-User-ID":   userID.String(),
		"X-User-Role": role,
	}
}

// coord возвращает указатель на координату для DTO запроса.
func coord(v float64) *float64 {
	return &v
}

func TestCreateAlert_Success(t *testing.T) {
	m, router := newTestHandler(t)
	requesterID := uuid.New()
	alertID := uuid.New()
	reqBody := CreateAlertRequest{
		Latitude:  coord(4.637),
		Longitude: coord(-74.084),
		Equipment: []string{models.EquipmentFirstAidKit},
	}

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), requesterID, models.RoleStudent, gomock.Any()).
		Return(&models.Alert{
			ID:               alertID,
			CreatedBy:        requesterID,
			Status:           models.StatusActive,
			TargetDepartment: models.DepartmentWellbeing,
			Latitude:         *reqBody.Latitude,
			Longitude:        *reqBody.Longitude,
			Equipment:        reqBody.Equipment,
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), identityHeaders(requesterID, models.RoleStudent))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, alertID, resp.ID)
	assert.Equal(t, models.StatusActive, resp.Status)
	assert.Equal(t, models.DepartmentWellbeing, resp.TargetDepartment)
}

func TestCreateAlert_ZeroCoordinateAccepted(t *testing.T) {
	m, router := newTestHandler(t)
	requesterID := uuid.New()

	// Точка на экваторе: нулевая широта валидна и не должна
	// отвергаться как отсутствующее поле.
	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), requesterID, models.RoleStudent, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ string, input service.CreateAlertInput) (*models.Alert, error) {
			assert.Equal(t, 0.0, input.Latitude)
			assert.Equal(t, -74.084, input.Longitude)
			return &models.Alert{
				ID:        uuid.New(),
				CreatedBy: id,
				Status:    models.StatusActive,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(0), Longitude: coord(-74.084)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		identityHeaders(requesterID, models.RoleStudent))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAlert_MissingCoordinateRejected(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(map[string]float64{"longitude": -74.084})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_OutOfRangeLatitudeRejected(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(91), Longitude: coord(-74.084)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_MissingAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(1), Longitude: coord(1)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAlert_BearerAPIKeyAccepted(t *testing.T) {
	m, router := newTestHandler(t)
	requesterID := uuid.New()

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), requesterID, models.RoleStudent, gomock.Any()).
		Return(&models.Alert{ID: uuid.New(), CreatedBy: requesterID, Status: models.StatusActive}, nil).Times(1)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(1), Longitude: coord(1)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), map[string]string{
		"Authorization": "Bearer test-api-key",
		"X-User-ID":     requesterID.String(),
		"X-User-Role":   models.RoleStudent,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAlert_MissingIdentity(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(1), Longitude: coord(1)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAlert_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBufferString("{not json"),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_UnknownEquipmentRejectedByValidation(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{
		Latitude:  coord(4.637),
		Longitude: coord(-74.084),
		Equipment: []string{"DEFIBRILLATOR"},
	})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_OpenAlertConflict(t *testing.T) {
	m, router := newTestHandler(t)
	requesterID := uuid.New()

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), requesterID, models.RoleStudent, gomock.Any()).
		Return(nil, models.ErrOpenAlertExists).Times(1)

	bodyBytes, _ := json.Marshal(CreateAlertRequest{Latitude: coord(4.637), Longitude: coord(-74.084)})
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes),
		identityHeaders(requesterID, models.RoleStudent))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetOwnAlert_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	requesterID := uuid.New()

	m.alerts.EXPECT().
		GetOwnAlert(gomock.Any(), requesterID).
		Return(nil, models.ErrAlertNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/own", nil, identityHeaders(requesterID, models.RoleStudent))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimAlert_Success(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		ClaimAlert(gomock.Any(), alertID, operatorID).
		Return(&models.Alert{ID: alertID, Status: models.StatusAttending, ClaimedBy: &operatorID}, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/claim", alertID), nil,
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusAttending, resp.Status)
}

func TestClaimAlert_ForbiddenForRequesterRole(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().ClaimAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/claim", uuid.New()), nil,
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClaimAlert_LosingOperatorGets409(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		ClaimAlert(gomock.Any(), alertID, operatorID).
		Return(nil, models.ErrAlreadyClaimed).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/claim", alertID), nil,
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimAlert_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().ClaimAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/not-a-uuid/claim", nil,
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloseAlert_WithNotes(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()
	notes := "resolved on site"

	m.alerts.EXPECT().
		CloseAlert(gomock.Any(), alertID, operatorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, got *string) (*models.Alert, error) {
			require.NotNil(t, got)
			assert.Equal(t, notes, *got)
			return &models.Alert{ID: alertID, Status: models.StatusClosed, ClosedBy: &operatorID, Notes: got}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(CloseAlertRequest{Notes: &notes})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/close", alertID), bytes.NewBuffer(bodyBytes),
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCloseAlert_ChunkedBodyKeepsNotes(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()
	notes := "handed over to campus security"

	m.alerts.EXPECT().
		CloseAlert(gomock.Any(), alertID, operatorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, got *string) (*models.Alert, error) {
			require.NotNil(t, got)
			assert.Equal(t, notes, *got)
			return &models.Alert{ID: alertID, Status: models.StatusClosed, ClosedBy: &operatorID, Notes: got}, nil
		}).Times(1)

	// io.MultiReader скрывает тип тела, поэтому httptest выставляет
	// ContentLength = -1, как при chunked-передаче.
	bodyBytes, _ := json.Marshal(CloseAlertRequest{Notes: &notes})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/close", alertID),
		io.MultiReader(bytes.NewReader(bodyBytes)),
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCloseAlert_EmptyBodyAllowed(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		CloseAlert(gomock.Any(), alertID, operatorID, gomock.Nil()).
		Return(&models.Alert{ID: alertID, Status: models.StatusClosed, ClosedBy: &operatorID}, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/close", alertID), nil,
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportFalseAlert_AlreadyClosed(t *testing.T) {
	m, router := newTestHandler(t)
	operatorID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		ReportFalseAlert(gomock.Any(), alertID, operatorID).
		Return(nil, models.ErrAlreadyClosed).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/false", alertID), nil,
		identityHeaders(operatorID, models.RoleOperator))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListOpenAlerts_OperatorOnly(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().ListOpenAlerts(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts/open", nil,
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListOpenAlerts_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().
		ListOpenAlerts(gomock.Any()).
		Return([]*models.Alert{
			{ID: uuid.New(), Status: models.StatusActive},
			{ID: uuid.New(), Status: models.StatusAttending},
		}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/open", nil,
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestAlertHistory_MissingCedula(t *testing.T) {
	m, router := newTestHandler(t)
	m.alerts.EXPECT().AlertHistory(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts/history", nil,
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertHistory_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profile := &models.Profile{ID: uuid.New(), Cedula: "1018456321", FalseAlertCount: 3}

	m.alerts.EXPECT().
		AlertHistory(gomock.Any(), "1018456321", 200).
		Return(profile, []*models.Alert{{ID: uuid.New(), Status: models.StatusClosed}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/history?cedula=1018456321", nil,
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Profile.FalseAlertCount)
	assert.Len(t, resp.Alerts, 1)
}

func TestGetProfile_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()

	m.alerts.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(&models.Profile{ID: userID, Role: models.RoleStudent, FalseAlertCount: 1}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/profile", nil, identityHeaders(userID, models.RoleStudent))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.FalseAlertCount)
}

func TestGetStats_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().GetStats(gomock.Any()).Return(5, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/stats", nil,
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.RequesterCount)
}

func TestCreateSite_AdminOnly(t *testing.T) {
	m, router := newTestHandler(t)
	m.geofences.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateSiteRequest{Name: "Sede Norte", City: "Bogota", Address: "Calle 1"})
	w := makeRequest(router, "POST", "/api/v1/sites", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleOperator))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpsertGeofence_Success(t *testing.T) {
	m, router := newTestHandler(t)
	siteID := uuid.New()
	polygon := geo.Polygon{Ring: []geo.Point{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 0},
		{Lon: 1, Lat: 1},
		{Lon: 0, Lat: 1},
		{Lon: 0, Lat: 0},
	}}

	m.geofences.EXPECT().
		UpsertForSite(gomock.Any(), siteID, polygon).
		Return(&models.Geofence{ID: uuid.New(), SiteID: siteID, Active: true, Polygon: polygon}, nil).Times(1)

	bodyBytes, _ := json.Marshal(UpsertGeofenceRequest{Polygon: polygon})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/sites/%s/geofence", siteID), bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp GeofenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, siteID, resp.SiteID)
	assert.True(t, resp.Active)
}

func TestUpsertGeofence_DegeneratePolygonRejected(t *testing.T) {
	m, router := newTestHandler(t)
	siteID := uuid.New()

	m.geofences.EXPECT().
		UpsertForSite(gomock.Any(), siteID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: ring has 2 vertices, need at least 4", geo.ErrInvalidPolygon)).Times(1)

	bodyBytes, _ := json.Marshal(UpsertGeofenceRequest{Polygon: geo.Polygon{Ring: []geo.Point{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 1},
	}}})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/sites/%s/geofence", siteID), bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckLocation_OnCampus(t *testing.T) {
	m, router := newTestHandler(t)

	m.geofences.EXPECT().
		CheckLocation(gomock.Any(), geo.Point{Lon: -74.084, Lat: 4.637}).
		Return([]*models.Geofence{{ID: uuid.New(), Active: true}}, nil).Times(1)

	bodyBytes, _ := json.Marshal(LocationCheckRequest{Latitude: coord(4.637), Longitude: coord(-74.084)})
	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LocationCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OnCampus)
	assert.Len(t, resp.Geofences, 1)
}

func TestCheckLocation_ZeroLatitudeAccepted(t *testing.T) {
	m, router := newTestHandler(t)

	m.geofences.EXPECT().
		CheckLocation(gomock.Any(), geo.Point{Lon: -74.084, Lat: 0}).
		Return([]*models.Geofence{}, nil).Times(1)

	bodyBytes, _ := json.Marshal(LocationCheckRequest{Latitude: coord(0), Longitude: coord(-74.084)})
	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckLocation_OffCampus(t *testing.T) {
	m, router := newTestHandler(t)

	m.geofences.EXPECT().
		CheckLocation(gomock.Any(), gomock.Any()).
		Return([]*models.Geofence{}, nil).Times(1)

	bodyBytes, _ := json.Marshal(LocationCheckRequest{Latitude: coord(50), Longitude: coord(50)})
	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes),
		identityHeaders(uuid.New(), models.RoleStudent))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LocationCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OnCampus)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
