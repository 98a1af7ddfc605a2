// Package mapper holds generic slice mapping helpers shared by persistence mappers and DTOs.
package mapper

import "fmt"

// MapSlicePtr applies a mapper function to each element of a pointer slice,
// skipping nil inputs. Returns nil if the input slice is nil.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}

// MapSlicePtrWithID maps a slice of pointers with error handling and ID extraction.
// It skips nil inputs and nil outputs, and includes the item ID in error messages.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}
