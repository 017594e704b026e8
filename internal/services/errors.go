package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport marks a network or status failure from an external service.
	ErrTransport = errors.New("transport error")
	// ErrUnavailable marks a local resource (such as the lookup cache) that
	// cannot be opened or initialized.
	ErrUnavailable = errors.New("unavailable")
	// ErrConfiguration marks a settings problem the operator must fix.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes service context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, service, operation, message string, err error) error {
	detail := buildDetail(service, operation, message)
	if marker == nil {
		marker = ErrTransport
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(service, operation, message string) string {
	parts := make([]string, 0, 3)
	if service = strings.TrimSpace(service); service != "" {
		parts = append(parts, service)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
