package models

import (
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
)

// Request модели

// UpdateActiveHoursRequest запрос на изменение рабочего окна сотрудника
type UpdateActiveHoursRequest struct {
	UserID     int64  `json:"userId"`
	ActiveFrom string `json:"activeFrom"` // HH:MM
	ActiveTo   string `json:"activeTo"`   // HH:MM
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID         int64     `json:"id"`
	SalonID    int64     `json:"salonId"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	ActiveFrom string    `json:"activeFrom"` // "09:00"
	ActiveTo   string    `json:"activeTo"`   // "18:00"
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(m *domain.StaffMember) *StaffResponse {
	if m == nil {
		return nil
	}

	return &StaffResponse{
		ID:         m.ID,
		SalonID:    m.SalonID,
		Name:       m.Name,
		Role:       m.Role,
		ActiveFrom: m.ActiveFrom.String(),
		ActiveTo:   m.ActiveTo.String(),
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(members []*domain.StaffMember) *StaffListResponse {
	if members == nil {
		return &StaffListResponse{
			Staff: []StaffResponse{},
		}
	}

	resp := &StaffListResponse{
		Staff: make([]StaffResponse, len(members)),
	}

	for i, member := range members {
		if staffResp := FromDomainStaff(member); staffResp != nil {
			resp.Staff[i] = *staffResp
		}
	}

	return resp
}
