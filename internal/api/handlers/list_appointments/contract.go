package list_appointments

import (
	"context"

	"github.com/kc-frost/vet-clinic/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListUpcoming(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
