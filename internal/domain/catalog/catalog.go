// Package catalog describes the service catalog rows a provider cascade touches.
package catalog

import (
	"github.com/smmpanel/panel/internal/shared/utils/setutil"
)

// ContainerKind names a grouping table that services point into.
type ContainerKind string

const (
	ContainerCategory    ContainerKind = "category"
	ContainerServiceType ContainerKind = "service_type"
)

func (k ContainerKind) String() string {
	return string(k)
}

// ServiceRef is the slice of a service row the cascade needs.
type ServiceRef struct {
	ID            uint
	CategoryID    uint
	ServiceTypeID *uint
}

// Affected is the distinct set of rows reachable from a provider's services.
type Affected struct {
	ServiceIDs     []uint
	CategoryIDs    []uint
	ServiceTypeIDs []uint
}

// Collect computes the affected ids from refs, sorted ascending.
func Collect(refs []ServiceRef) Affected {
	services := setutil.NewUintSet()
	categories := setutil.NewUintSet()
	types := setutil.NewUintSet()
	for _, ref := range refs {
		services.Add(ref.ID)
		categories.Add(ref.CategoryID)
		types.AddPtr(ref.ServiceTypeID)
	}
	return Affected{
		ServiceIDs:     services.Sorted(),
		CategoryIDs:    categories.Sorted(),
		ServiceTypeIDs: types.Sorted(),
	}
}

// Containers returns the affected ids for kind.
func (a Affected) Containers(kind ContainerKind) []uint {
	if kind == ContainerServiceType {
		return a.ServiceTypeIDs
	}
	return a.CategoryIDs
}

// ServiceStats holds per-provider service and order counters.
type ServiceStats struct {
	Total    int64
	Active   int64
	Inactive int64
	Orders   int64
}
