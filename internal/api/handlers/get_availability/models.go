package get_availability

import (
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	getAvailability "github.com/kc-frost/vet-clinic/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ReasonKey string         `json:"reasonKey"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse HTTP model одного доступного слота
type SlotResponse struct {
	SlotID       string `json:"slotId"`
	Date         string `json:"date"`      // "2026-02-15"
	StartTime    string `json:"startTime"` // "09:00"
	EndTime      string `json:"endTime"`   // "10:00"
	DisplayLabel string `json:"displayLabel"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(reasonKey, startDateStr, endDateStr string) (*getAvailability.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ReasonKey: domain.ReasonKey(reasonKey),
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			SlotID:       s.SlotID,
			Date:         s.Date,
			StartTime:    s.StartTime.String(),
			EndTime:      s.EndTime.String(),
			DisplayLabel: s.DisplayLabel,
		}
	}

	return &AvailabilityResponse{
		ReasonKey: string(resp.ReasonKey),
		Slots:     slots,
	}
}
