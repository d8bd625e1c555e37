package server

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	if _, err := validateName("   "); err == nil {
		t.Fatalf("expected blank name rejected")
	}
	if _, err := validateName(strings.Repeat("a", maxNameLength+1)); err == nil {
		t.Fatalf("expected oversized name rejected")
	}
	got, err := validateName("  Ada   Lovelace  ")
	if err != nil {
		t.Fatalf("validate name: %v", err)
	}
	if got != "Ada Lovelace" {
		t.Fatalf("expected whitespace collapsed, got %q", got)
	}
}

func TestValidateRoomID(t *testing.T) {
	for _, id := range []string{"den-1", "A_b3", "x"} {
		if _, err := validateRoomID(id); err != nil {
			t.Fatalf("expected %q accepted: %v", id, err)
		}
	}
	for _, id := range []string{"", "has space", "sla/sh", strings.Repeat("x", maxRoomIDLength+1)} {
		if _, err := validateRoomID(id); err == nil {
			t.Fatalf("expected %q rejected", id)
		}
	}
}

func TestValidateMessage(t *testing.T) {
	if _, err := validateMessage(""); err == nil {
		t.Fatalf("expected empty message rejected")
	}
	if _, err := validateMessage(strings.Repeat("a", maxMessageLength+1)); err == nil {
		t.Fatalf("expected oversized message rejected")
	}
	got, err := validateMessage("  hello   there ")
	if err != nil {
		t.Fatalf("validate message: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("expected whitespace collapsed, got %q", got)
	}
}
