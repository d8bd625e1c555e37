package server

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxNameLength    = 20
	maxRoomIDLength  = 32
	maxMessageLength = 280
)

func validateName(name string) (string, error) {
	return validateText("name", name, maxNameLength)
}

func validateMessage(text string) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", errors.New("message is required")
	}
	if len(trimmed) > maxMessageLength {
		return "", fmt.Errorf("message must be %d characters or fewer", maxMessageLength)
	}
	return trimmed, nil
}

func validateRoomID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", errors.New("room_id is required")
	}
	if len(trimmed) > maxRoomIDLength {
		return "", fmt.Errorf("room_id must be %d characters or fewer", maxRoomIDLength)
	}
	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '-' || r == '_' {
			continue
		}
		return "", errors.New("room_id contains unsupported characters")
	}
	return trimmed, nil
}

func validateText(label, text string, maxLen int) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	if len(trimmed) > maxLen {
		return "", fmt.Errorf("%s must be %d characters or fewer", label, maxLen)
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}
