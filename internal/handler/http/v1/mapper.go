package v1

import (
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

func ModelToAlertResponse(alert *models.Alert) AlertResponse {
	return AlertResponse{
		ID:               alert.ID,
		CreatedBy:        alert.CreatedBy,
		Status:           alert.Status,
		TargetDepartment: alert.TargetDepartment,
		Location:         geo.Point{Lon: alert.Longitude, Lat: alert.Latitude},
		AccuracyM:        alert.AccuracyM,
		Equipment:        alert.Equipment,
		PhotoPath:        alert.PhotoPath,
		ClaimedBy:        alert.ClaimedBy,
		ClaimedAt:        alert.ClaimedAt,
		ClosedBy:         alert.ClosedBy,
		ClosedAt:         alert.ClosedAt,
		Notes:            alert.Notes,
		CreatedAt:        alert.CreatedAt,
	}
}

func ModelsToAlertResponses(alerts []*models.Alert) []AlertResponse {
	responses := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		responses = append(responses, ModelToAlertResponse(alert))
	}
	return responses
}

func ModelToSiteResponse(site *models.Site) SiteResponse {
	return SiteResponse{
		ID:         site.ID,
		Name:       site.Name,
		City:       site.City,
		Address:    site.Address,
		Department: site.Department,
		Active:     site.Active,
		CreatedAt:  site.CreatedAt,
	}
}

func ModelsToSiteResponses(sites []*models.Site) []SiteResponse {
	responses := make([]SiteResponse, 0, len(sites))
	for _, site := range sites {
		responses = append(responses, ModelToSiteResponse(site))
	}
	return responses
}

func ModelToGeofenceResponse(fence *models.Geofence) GeofenceResponse {
	return GeofenceResponse{
		ID:        fence.ID,
		SiteID:    fence.SiteID,
		Active:    fence.Active,
		Polygon:   fence.Polygon,
		CreatedAt: fence.CreatedAt,
	}
}

func ModelsToGeofenceResponses(fences []*models.Geofence) []GeofenceResponse {
	responses := make([]GeofenceResponse, 0, len(fences))
	for _, fence := range fences {
		responses = append(responses, ModelToGeofenceResponse(fence))
	}
	return responses
}

func ModelToProfileResponse(profile *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              profile.ID,
		FullName:        profile.FullName,
		Cedula:          profile.Cedula,
		Phone:           profile.Phone,
		Role:            profile.Role,
		Department:      profile.Department,
		FalseAlertCount: profile.FalseAlertCount,
	}
}
