package engine

import "errors"

var (
	// ErrFileNotFound is returned when the dataset path does not exist.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrDataFormat is returned when a required column is missing or a cell cannot be parsed.
	ErrDataFormat = errors.New("malformed dataset")

	// ErrEmptyGroup is returned when a statistic is requested over zero rows.
	ErrEmptyGroup = errors.New("statistic over empty group")

	// ErrUnknownStatistic is returned for a statistic name outside mean, median, max, min.
	ErrUnknownStatistic = errors.New("unknown statistic")
)
