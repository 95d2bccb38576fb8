package model

import (
	"strings"
	"time"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
)

// UrgencyType is the unit a turnaround request is expressed in.
type UrgencyType string

const (
	UrgencyDays  UrgencyType = "days"
	UrgencyHours UrgencyType = "hours"
)

// ParseUrgencyType validates the urgency unit.
func ParseUrgencyType(raw string) (UrgencyType, error) {
	switch UrgencyType(strings.ToLower(strings.TrimSpace(raw))) {
	case UrgencyDays:
		return UrgencyDays, nil
	case UrgencyHours:
		return UrgencyHours, nil
	default:
		return "", domainErrors.ErrInvalidUrgency
	}
}

// SingleAssignment is one order line grouping tasks under shared terms.
type SingleAssignment struct {
	ID           int64
	ProjectType  string
	Topic        string
	UrgencyType  UrgencyType
	UrgencyValue string
	Tasks        []AssignmentTask
	SessionID    string
	CreatedAt    time.Time
}

// AssignmentDraft holds the terms submitted when staged tasks are finalized.
type AssignmentDraft struct {
	ProjectType  string
	Topic        string
	UrgencyType  string
	UrgencyValue string
}
