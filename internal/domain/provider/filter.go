package provider

import (
	"fmt"
	"strings"
)

// ListFilter selects which providers a listing returns.
type ListFilter string

const (
	FilterActive       ListFilter = "active"
	FilterInactive     ListFilter = "inactive"
	FilterTrash        ListFilter = "trash"
	FilterAll          ListFilter = "all"
	FilterWithServices ListFilter = "with-services"
)

// ParseListFilter maps a query value onto a ListFilter. Empty means active.
func ParseListFilter(s string) (ListFilter, error) {
	switch f := ListFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterActive, nil
	case FilterActive, FilterInactive, FilterTrash, FilterAll, FilterWithServices:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

func (f ListFilter) String() string {
	return string(f)
}

// DeleteMode selects soft (trash) or hard (permanent) deletion.
type DeleteMode string

const (
	DeleteModeTrash     DeleteMode = "trash"
	DeleteModePermanent DeleteMode = "permanent"
)

// ParseDeleteMode maps a query value onto a DeleteMode. Empty means permanent.
func ParseDeleteMode(s string) (DeleteMode, error) {
	switch m := DeleteMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DeleteModePermanent, nil
	case DeleteModeTrash, DeleteModePermanent:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDeleteMode, s)
	}
}

func (m DeleteMode) String() string {
	return string(m)
}
