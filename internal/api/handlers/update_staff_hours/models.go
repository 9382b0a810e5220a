package update_staff_hours

// UpdateStaffHoursRequest HTTP request model
type UpdateStaffHoursRequest struct {
	ActiveFrom string `json:"activeFrom"` // "09:00"
	ActiveTo   string `json:"activeTo"`   // "18:00"
}
