package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds             = errors.New("coordinates out of grid bound")
	ErrMalformedInput          = errors.New("malformed grid input")
	ErrInvalidShape            = errors.New("invalid ship shape")
	ErrAdjacencyViolation      = errors.New("ships touch each other")
	ErrInvalidFleetComposition = errors.New("fleet composition does not match requirement")
	ErrGenerationFailed        = errors.New("failed to generate a valid field")
	ErrInvalidConfig           = errors.New("invalid field configuration")
)

func ErrCoordinatesOutOfBounds(col, row int) error {
	return fmt.Errorf("%w\tcol: %d\trow: %d", ErrOutOfBounds, col, row)
}

func ErrInvalidCoordinatesNotation(notation string) error {
	return fmt.Errorf("%w\tnotation: %q", ErrOutOfBounds, notation)
}

func ErrMalformedLineCount(expected, got int) error {
	return fmt.Errorf("%w\texpected %d lines, got: %d", ErrMalformedInput, expected, got)
}

func ErrMalformedLine(line int, reason string) error {
	return fmt.Errorf("%w\tline %d: %s", ErrMalformedInput, line, reason)
}

func ErrShipTouchesForeign(col, row int) error {
	return fmt.Errorf("%w: %w\tcol: %d\trow: %d", ErrInvalidShape, ErrAdjacencyViolation, col, row)
}

func ErrNotShipPosition(col, row int) error {
	return fmt.Errorf("%w\tno ship at col: %d\trow: %d", ErrInvalidShape, col, row)
}

func ErrShipSizeNotAllowed(size int) error {
	return fmt.Errorf("%w\tship size not allowed: %d", ErrInvalidFleetComposition, size)
}

func ErrFleetCountMismatch(size, expected, got int) error {
	return fmt.Errorf("%w\tsize: %d\texpected: %d\tgot: %d", ErrInvalidFleetComposition, size, expected, got)
}

func ErrGridSizeMismatch(expected, got int) error {
	return fmt.Errorf("%w\tgrid size expected: %d\tgot: %d", ErrInvalidConfig, expected, got)
}

func ErrConfig(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, reason)
}

func ErrGenerationExhausted(restarts int) error {
	return fmt.Errorf("%w after %d restarts", ErrGenerationFailed, restarts)
}
