package salonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с SalonService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SalonService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSalon получает карточку салона с расписанием работы
func (c *Client) GetSalon(ctx context.Context, salonID int64) (*Salon, error) {
	url := fmt.Sprintf("%s/internal/salons/%d", c.baseURL, salonID)

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
		return nil, fmt.Errorf("%w: invalid salon ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrSalonNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var salon Salon
	if err := json.NewDecoder(resp.Body).Decode(&salon); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &salon, nil
}

// GetSalonWithGracefulDegradation получает салон с graceful degradation.
// При недоступности SalonService возвращает ErrServiceDegraded, что позволяет
// сервису собрать планинг по окну работы из конфигурации
func (c *Client) GetSalonWithGracefulDegradation(ctx context.Context, salonID int64) (*Salon, error) {
	c.log.Info("Fetching salon salon_id=%d", salonID)

	salon, err := c.GetSalon(ctx, salonID)
	if err != nil {
		// Если это критичная бизнес-ошибка (салон не существует),
		// пробрасываем её дальше
		if err == ErrSalonNotFound {
			c.log.Info("Salon not found salon_id=%d", salonID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("SalonService unavailable, applying graceful degradation for salon_id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: salon_id=%d, error=%v", ErrServiceDegraded, salonID, err)
	}

	c.log.Info("Successfully fetched salon salon_id=%d, name=%s", salonID, salon.Name)
	return salon, nil
}

// ScheduleFor возвращает режим работы салона на заданную дату
func (s *Salon) ScheduleFor(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return s.WorkingHours.Monday
	case time.Tuesday:
		return s.WorkingHours.Tuesday
	case time.Wednesday:
		return s.WorkingHours.Wednesday
	case time.Thursday:
		return s.WorkingHours.Thursday
	case time.Friday:
		return s.WorkingHours.Friday
	case time.Saturday:
		return s.WorkingHours.Saturday
	default:
		return s.WorkingHours.Sunday
	}
}
