package employeeservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("employeeservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("employeeservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что EmployeeService недоступен и в расписании следует
	// показывать бронирования без имён владельцев
	ErrServiceDegraded = errors.New("employeeservice unavailable: graceful degradation applied")
)
