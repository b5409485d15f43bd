package employeeservice

// Employee модель сотрудника из EmployeeService
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	IsAdmin    bool   `json:"is_admin"`
	IsActive   bool   `json:"is_active"`
}

// DisplayName возвращает имя для отображения в расписании
func (e *Employee) DisplayName() string {
	if e.FirstName == "" && e.LastName == "" {
		return e.Email
	}
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// ErrorResponse модель ошибки от EmployeeService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
