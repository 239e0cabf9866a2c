package domain

import (
	"errors"
	"strings"
	"time"
)

// Org represents an organization/tenant. Organizations are owned by the organization-management
// subsystem; this service only reads them.
type Org struct {
	ID          string
	Name        string
	Type        OrgType
	LogoImage   string
	Description string
	StartedAt   *time.Time
	CreatedAt   time.Time
}

type OrgType string

const (
	OrgTypeSchool         OrgType = "school"
	OrgTypeChurch         OrgType = "church"
	OrgTypeBusiness       OrgType = "business"
	OrgTypeTrainingCenter OrgType = "training_center"
	OrgTypeOther          OrgType = "other"
)

// ParseOrgType maps a stored type string to an OrgType. Unrecognized values map to OrgTypeOther.
func ParseOrgType(s string) OrgType {
	t := OrgType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case OrgTypeSchool, OrgTypeChurch, OrgTypeBusiness, OrgTypeTrainingCenter, OrgTypeOther:
		return t
	}
	if strings.ReplaceAll(string(t), "-", "_") == string(OrgTypeTrainingCenter) {
		return OrgTypeTrainingCenter
	}
	return OrgTypeOther
}

// Validate validates the organization for persistence. Returns an error describing the first validation failure.
func (o *Org) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("name is required")
	}
	if o.Type == "" {
		o.Type = OrgTypeOther
	}
	switch o.Type {
	case OrgTypeSchool, OrgTypeChurch, OrgTypeBusiness, OrgTypeTrainingCenter, OrgTypeOther:
	default:
		return errors.New("type must be one of school, church, business, training_center, other")
	}
	return nil
}
