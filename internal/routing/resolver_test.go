package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

func TestResolve_RoleMapping(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{"студент -> благополучие", models.RoleStudent, models.DepartmentWellbeing},
		{"сотрудник -> охрана труда", models.RoleStaff, models.DepartmentOccHealth},
		{"оператор -> безопасность", models.RoleOperator, models.DepartmentSecurity},
		{"неизвестная роль -> безопасность", "VISITOR", models.DepartmentSecurity},
		{"пустая роль -> безопасность", "", models.DepartmentSecurity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.role))
		})
	}
}

func square(lon, lat, size float64) geo.Polygon {
	return geo.Polygon{Ring: []geo.Point{
		{Lon: lon, Lat: lat},
		{Lon: lon + size, Lat: lat},
		{Lon: lon + size, Lat: lat + size},
		{Lon: lon, Lat: lat + size},
		{Lon: lon, Lat: lat},
	}}
}

func TestResolveAt_OverrideWinsInsideFence(t *testing.T) {
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: models.DepartmentSecurity},
	}

	point := geo.Point{Lon: 1, Lat: 1}
	assert.Equal(t, models.DepartmentSecurity, ResolveAt(models.RoleStudent, &point, overrides))
}

func TestResolveAt_RoleMappingOutsideFence(t *testing.T) {
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: models.DepartmentSecurity},
	}

	point := geo.Point{Lon: 10, Lat: 10}
	assert.Equal(t, models.DepartmentWellbeing, ResolveAt(models.RoleStudent, &point, overrides))
}

func TestResolveAt_FirstContainingOverrideWins(t *testing.T) {
	// Две пересекающиеся геозоны: выигрывает первая по порядку.
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: models.DepartmentOccHealth},
		{Polygon: square(1, 1, 2), Department: models.DepartmentSecurity},
	}

	point := geo.Point{Lon: 1.5, Lat: 1.5}
	assert.Equal(t, models.DepartmentOccHealth, ResolveAt(models.RoleStudent, &point, overrides))
}

func TestResolveAt_NilPointFallsBackToRole(t *testing.T) {
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: models.DepartmentSecurity},
	}

	assert.Equal(t, models.DepartmentOccHealth, ResolveAt(models.RoleStaff, nil, overrides))
}

func TestResolveAt_EmptyDepartmentOverrideSkipped(t *testing.T) {
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: ""},
	}

	point := geo.Point{Lon: 1, Lat: 1}
	assert.Equal(t, models.DepartmentWellbeing, ResolveAt(models.RoleStudent, &point, overrides))
}

func TestResolveAt_Deterministic(t *testing.T) {
	overrides := []Override{
		{Polygon: square(0, 0, 2), Department: models.DepartmentSecurity},
	}
	point := geo.Point{Lon: 1, Lat: 1}

	first := ResolveAt(models.RoleStudent, &point, overrides)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveAt(models.RoleStudent, &point, overrides))
	}
}
