package model

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. Transitions are caller-directed and may move backward
// (resolved -> pending is a legal manual correction).
const (
	StatusPending    = "pending"
	StatusProgress   = "progress"
	StatusResolved   = "resolved"
	StatusUnresolved = "unresolved"
)

// Reporter is the immutable identity snapshot of the citizen who filed
// a report, taken at creation time.
type Reporter struct {
	UID   uuid.UUID `json:"uid"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Report struct {
	ID                    uuid.UUID `json:"id"`
	ReportedBy            Reporter  `json:"reported_by"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	Department            string    `json:"department"`
	Address               string    `json:"address,omitempty"`
	PhotoURLs             []string  `json:"photo_urls,omitempty"`
	IsVerifiedByAdmin     bool      `json:"is_verified_by_admin"`
	Status                string    `json:"status"`
	ResolutionDescription string    `json:"resolution_description,omitempty"`
	ReportedDate          time.Time `json:"reported_date"`
	LastUpdated           time.Time `json:"last_updated"`
}

type CreateReportRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Department  string   `json:"department" validate:"required,department"`
	Address     string   `json:"address"`
	PhotoURLs   []string `json:"photo_urls"`
}

// UpdateReportFieldsRequest carries the only fields that stay mutable
// after creation. Absent fields are left untouched.
type UpdateReportFieldsRequest struct {
	Status                *string `json:"status,omitempty" validate:"omitempty,report_status"`
	ResolutionDescription *string `json:"resolution_description,omitempty"`
	IsVerifiedByAdmin     *bool   `json:"is_verified_by_admin,omitempty"`
}

type TransitionRequest struct {
	Status                string `json:"status" validate:"required,report_status"`
	ResolutionDescription string `json:"resolution_description"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProgress, StatusResolved, StatusUnresolved:
		return true
	}
	return false
}
