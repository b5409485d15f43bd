package employeeservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с EmployeeService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmployeeService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployee получает сотрудника по ID
func (c *Client) GetEmployee(ctx context.Context, employeeID int64) (*Employee, error) {
	url := fmt.Sprintf("%s/internal/employees/%d", c.baseURL, employeeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid employee ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var employee Employee
	if err := json.NewDecoder(resp.Body).Decode(&employee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &employee, nil
}

// GetEmployeeWithGracefulDegradation получает сотрудника с graceful degradation
// При недоступности EmployeeService возвращает ErrServiceDegraded: расписание
// в этом случае отдаётся без имён владельцев, а не падает целиком
func (c *Client) GetEmployeeWithGracefulDegradation(ctx context.Context, employeeID int64) (*Employee, error) {
	employee, err := c.GetEmployee(ctx, employeeID)
	if err != nil {
		// Бизнес-ошибку пробрасываем как есть
		if err == ErrEmployeeNotFound {
			c.log.Info("Employee id=%d not found", employeeID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, парсинг) - деградация
		c.log.Error("EmployeeService unavailable, applying graceful degradation for employee_id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: employee_id=%d, error=%v", ErrServiceDegraded, employeeID, err)
	}

	return employee, nil
}
