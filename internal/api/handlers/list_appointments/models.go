package list_appointments

import (
	"strconv"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтры списка из query параметров.
// Конкретная дата и период взаимоисключающие: при одновременной передаче
// приоритет у конкретной даты, период игнорируется на уровне репозитория.
func ToServiceRequest(searchStr, dateStr, employeeStr, startDateStr, endDateStr, statusStr string) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if searchStr != "" {
		req.Search = &searchStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if employeeStr != "" {
		employeeID, err := strconv.ParseInt(employeeStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.EmployeeID = &employeeID
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		if _, err := models.ToDomainStatus(statusStr); err != nil {
			return nil, err
		}
		req.Status = &statusStr
	}

	return req, nil
}
