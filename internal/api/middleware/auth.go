package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
)

const (
	headerEmployeeID = "X-Employee-ID"

	msgMissingEmployeeID = "отсутствует заголовок X-Employee-ID"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
)

type contextKey string

const employeeIDKey contextKey = "employeeID"

// Auth middleware требует заголовок X-Employee-ID и кладёт ID сотрудника
// в контекст запроса. Это единственная точка нормализации идентификатора
// зрителя - handlers и нижние слои работают только с int64 из контекста
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerEmployeeID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingEmployeeID)
			return
		}

		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || employeeID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidEmployeeID)
			return
		}

		ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identify middleware - мягкий вариант Auth для публичных маршрутов
// расписания. Если заголовок присутствует и корректен, ID сотрудника
// попадает в контекст; иначе запрос обрабатывается как анонимный
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerEmployeeID)
		if raw != "" {
			if employeeID, err := strconv.ParseInt(raw, 10, 64); err == nil && employeeID > 0 {
				ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetEmployeeID извлекает ID сотрудника из контекста запроса
func GetEmployeeID(ctx context.Context) (int64, bool) {
	employeeID, ok := ctx.Value(employeeIDKey).(int64)
	return employeeID, ok
}
