// Package routing - чистый резолвер маршрутизации тревог: роль заявителя
// (и опционально точка с активными геозонами) -> целевой департамент.
// Никакого I/O и побочных эффектов, результат детерминирован.
package routing

import (
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// Override - активная геозона площадки с выделенным департаментом.
// Если точка тревоги попадает в полигон, департамент площадки
// переопределяет ролевое сопоставление.
type Override struct {
	Polygon    geo.Polygon
	Department string
}

// Resolve возвращает департамент по роли заявителя.
// Неизвестные роли маршрутизируются в службу безопасности.
func Resolve(role string) string {
	switch role {
	case models.RoleStudent:
		return models.DepartmentWellbeing
	case models.RoleStaff:
		return models.DepartmentOccHealth
	default:
		return models.DepartmentSecurity
	}
}

// ResolveAt дополняет Resolve геопривязкой: когда заданы и точка, и геозоны,
// первая содержащая точку геозона с департаментом выигрывает. Без точки или
// без геозон работает ролевое сопоставление.
func ResolveAt(role string, point *geo.Point, overrides []Override) string {
	if point != nil {
		for _, ov := range overrides {
			if ov.Department == "" {
				continue
			}
			if ov.Polygon.Contains(*point) {
				return ov.Department
			}
		}
	}
	return Resolve(role)
}
