package services

import "errors"

// ErrSearchCriteria is returned when a donor search lacks blood group or city.
var ErrSearchCriteria = errors.New("blood_group and city are required")
