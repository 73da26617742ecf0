package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appointmentRepo "github.com/charlitron/CitasService/internal/infra/storage/appointment"
	"github.com/charlitron/CitasService/internal/service/appointments/models"
)

// Service сервис чтения записей на прием
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByEmail получает историю записей клиента (включая отмененные)
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByEmail: fetching appointments for email=%s", email)

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByEmail: fetched %d appointments for email=%s", len(appts), email)
	return models.FromDomainAppointmentList(appts), nil
}
