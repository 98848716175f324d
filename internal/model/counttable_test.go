package model

import (
	"reflect"
	"testing"
)

func TestCountTable_InsertionOrder(t *testing.T) {
	table := NewCountTable()
	table.Seed("untagged")
	table.Increment("web")
	table.Increment("ssh")
	table.Increment("web")

	expected := []string{"untagged", "web", "ssh"}
	if !reflect.DeepEqual(table.Keys(), expected) {
		t.Errorf("Expected key order %v, got %v", expected, table.Keys())
	}
}

func TestCountTable_Increment(t *testing.T) {
	table := NewCountTable()
	table.Increment("web")
	table.Increment("web")
	table.Increment("web")

	count, ok := table.Get("web")
	if !ok || count != 3 {
		t.Errorf("Expected count 3 for 'web', got %d (present=%v)", count, ok)
	}
	if table.Len() != 1 {
		t.Errorf("Expected 1 key, got %d", table.Len())
	}
}

func TestCountTable_SeedDoesNotResetExistingCount(t *testing.T) {
	table := NewCountTable()
	table.Increment("web")
	table.Seed("web")

	count, _ := table.Get("web")
	if count != 1 {
		t.Errorf("Seed should not reset an existing count, got %d", count)
	}
	if table.Len() != 1 {
		t.Errorf("Seed should not duplicate an existing key, got %d keys", table.Len())
	}
}

func TestCountTable_SeedReportsZero(t *testing.T) {
	table := NewCountTable()
	table.Seed("untagged")

	count, ok := table.Get("untagged")
	if !ok {
		t.Fatal("Seeded key should be present")
	}
	if count != 0 {
		t.Errorf("Seeded key should count 0, got %d", count)
	}
}
