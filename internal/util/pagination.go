package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

var (
	ErrNegativePage     = errors.New("page index must not be less than zero")
	ErrPageSizeTooLow   = errors.New("page size must not be less than one")
	ErrPageSizeTooHigh  = fmt.Errorf("page size must not exceed %d", MaxPageSize)
	ErrPageOutOfRange   = errors.New("page index is out of range")
	ErrInvalidPageParam = errors.New("page parameter is not an integer")
)

// ParseIntDefault returns def for an empty string and an error for anything that is not an integer.
func ParseIntDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageParam, s)
	}
	return v, nil
}

// Window converts a zero-based page number into an offset/limit pair.
func Window(pageNo, pageSize int) (offset int, limit int, err error) {
	if pageNo < 0 {
		return 0, 0, ErrNegativePage
	}
	if pageSize < 1 {
		return 0, 0, ErrPageSizeTooLow
	}
	if pageSize > MaxPageSize {
		return 0, 0, ErrPageSizeTooHigh
	}
	if pageNo > math.MaxInt/pageSize {
		return 0, 0, ErrPageOutOfRange
	}
	return pageNo * pageSize, pageSize, nil
}

func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
