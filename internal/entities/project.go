// Package entities contains core business entities.
package entities

import "strings"

// ProjectType is a closed tag distinguishing report grouping.
type ProjectType string

const (
	// TypeSoftware marks a software project.
	TypeSoftware ProjectType = "Software"
	// TypeHardware marks a hardware project.
	TypeHardware ProjectType = "Hardware"
)

// ParseProjectType normalizes a type name case-insensitively.
// Anything that is not software resolves to hardware, matching the
// original catalog behavior.
func ParseProjectType(s string) ProjectType {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeSoftware)) {
		return TypeSoftware
	}
	return TypeHardware
}

// Project is a domain representation of a tracked project. Tasks and
// assigned users are not embedded; they live in relationship indexes
// keyed by the project ID.
type Project struct {
	ID          string
	Type        ProjectType
	Name        string
	Description string
	Budget      float64
	TeamSize    int
}
