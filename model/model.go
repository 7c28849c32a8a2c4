package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a suffix.
// This is useful for creating unique identifiers with context-specific prefixes.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	uuidStr := id.String()
	idWithSuffix := fmt.Sprintf("%s_%s", module, uuidStr)
	return idWithSuffix
}

// ParseAccountKind maps a configuration string onto an AccountKind.
func ParseAccountKind(kind string) (AccountKind, error) {
	switch AccountKind(kind) {
	case Checking:
		return Checking, nil
	case Savings:
		return Savings, nil
	}
	return "", errors.Errorf("unknown account kind %q", kind)
}
