package model

import "time"

// Source identifies the collection an entry currently lives in. It is
// derived at read time and never persisted with the record.
type Source string

const (
	SourceAssignment Source = "Assignment"
	SourceSourcing   Source = "Sourcing"
)

// EntryStatusCompleted marks an entry as done for dashboard aggregation.
const EntryStatusCompleted = "completed"

// Entry represents a tracked bid/quote record.
type Entry struct {
	ID             string `json:"id"`
	Source         Source `json:"source,omitempty"`
	PortalName     string `json:"portalName,omitempty"`
	BidNumber      string `json:"bidNumber,omitempty"`
	HunterName     string `json:"hunterName,omitempty"`
	ContactName    string `json:"contactName,omitempty"`
	Email          string `json:"email,omitempty"`
	BidTitle       string `json:"bidTitle,omitempty"`
	Category       string `json:"category,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	PortalLink     string `json:"portalLink,omitempty"`
	HuntingRemarks string `json:"huntingRemarks,omitempty"`
	Status         string `json:"status,omitempty"`
	Date           string `json:"date,omitempty"`
	DueDate        string `json:"dueDate,omitempty"`
	TransferredAt  string `json:"transferredAt,omitempty"`
	AssignedBy     string `json:"assignedBy,omitempty"`

	TimeStamp time.Time `json:"timeStamp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryUpdate carries a shallow field merge for an existing entry. Nil
// fields are left untouched.
type EntryUpdate struct {
	PortalName     *string `json:"portalName,omitempty"`
	BidNumber      *string `json:"bidNumber,omitempty"`
	HunterName     *string `json:"hunterName,omitempty"`
	ContactName    *string `json:"contactName,omitempty"`
	Email          *string `json:"email,omitempty"`
	BidTitle       *string `json:"bidTitle,omitempty"`
	Category       *string `json:"category,omitempty"`
	Quantity       *string `json:"quantity,omitempty"`
	PortalLink     *string `json:"portalLink,omitempty"`
	HuntingRemarks *string `json:"huntingRemarks,omitempty"`
	Status         *string `json:"status,omitempty"`
	Date           *string `json:"date,omitempty"`
	DueDate        *string `json:"dueDate,omitempty"`
	TransferredAt  *string `json:"transferredAt,omitempty"`
	AssignedBy     *string `json:"assignedBy,omitempty"`
}

// Apply merges the non-nil fields of the update into the entry.
func (u *EntryUpdate) Apply(e *Entry) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&e.PortalName, u.PortalName)
	set(&e.BidNumber, u.BidNumber)
	set(&e.HunterName, u.HunterName)
	set(&e.ContactName, u.ContactName)
	set(&e.Email, u.Email)
	set(&e.BidTitle, u.BidTitle)
	set(&e.Category, u.Category)
	set(&e.Quantity, u.Quantity)
	set(&e.PortalLink, u.PortalLink)
	set(&e.HuntingRemarks, u.HuntingRemarks)
	set(&e.Status, u.Status)
	set(&e.Date, u.Date)
	set(&e.DueDate, u.DueDate)
	set(&e.TransferredAt, u.TransferredAt)
	set(&e.AssignedBy, u.AssignedBy)
}

// DeleteResult reports which collection a deleted entry was removed from.
type DeleteResult struct {
	Success bool   `json:"success"`
	Source  Source `json:"source"`
}
