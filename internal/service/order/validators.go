package order

import (
	"strings"

	"github.com/google/uuid"
)

// canonicalUUID приводит id к виду, в котором его возвращает PostgreSQL:
// нижний регистр, без фигурных скобок и префикса urn:uuid:.
// Строки id сравниваются только после него.
func canonicalUUID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
