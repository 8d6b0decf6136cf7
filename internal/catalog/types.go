package catalog

import "strings"

// DateLayout is the calendar date format the server exchanges
const DateLayout = "2006-01-02"

// Status is the lifecycle state of a catalog
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// AllowedStatuses returns the valid status values in display order
func AllowedStatuses() []string {
	return []string{string(StatusActive), string(StatusInactive)}
}

// ParseStatus matches a status case-insensitively against the allowed
// set and returns the normalized lowercase value.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusActive):
		return StatusActive, true
	case string(StatusInactive):
		return StatusInactive, true
	}
	return "", false
}

// Catalog is a server-owned record. The client holds transient copies
// only; every edit re-fetches and re-submits the full record.
type Catalog struct {
	ID          int    `json:"catalog_id"`
	Name        string `json:"catalog_name"`
	Description string `json:"catalog_description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      Status `json:"status"`
}

// Draft carries the user-entered fields of a catalog before submission.
// Field tags drive both the request payload and client-side validation.
type Draft struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description" validate:"required,max=50"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Status      string `json:"status" validate:"required,catalogstatus"`
}

// normalized returns a copy with whitespace trimmed the way the form
// trims input before validation and submission.
func (d Draft) normalized() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.StartDate = strings.TrimSpace(d.StartDate)
	d.EndDate = strings.TrimSpace(d.EndDate)
	d.Status = strings.TrimSpace(d.Status)
	return d
}

// DraftFromCatalog seeds an edit draft from a fetched record
func DraftFromCatalog(c *Catalog) Draft {
	return Draft{
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      string(c.Status),
	}
}
