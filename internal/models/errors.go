package models

import "errors"

// Ошибки доменного уровня. Конфликтные исходы отличаются от ошибок валидации:
// правильная реакция на конфликт - перечитать состояние, а не повторять мутацию.
var (
	// ErrOpenAlertExists - у заявителя уже есть незакрытая тревога.
	ErrOpenAlertExists = errors.New("requester already has an open alert")

	// ErrAlreadyClaimed - тревогу уже взял в работу другой оператор.
	ErrAlreadyClaimed = errors.New("alert is already claimed")

	// ErrAlreadyClosed - тревога уже закрыта, переходы из CLOSED запрещены.
	ErrAlreadyClosed = errors.New("alert is already closed")

	// ErrAlertNotFound - тревога с таким id не существует.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrProfileNotFound - профиль пользователя не найден.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSiteNotFound - площадка не найдена.
	ErrSiteNotFound = errors.New("site not found")
)

// Conflict возвращает true для конфликтных исходов guarded-переходов.
func Conflict(err error) bool {
	return errors.Is(err, ErrOpenAlertExists) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrAlreadyClosed)
}
