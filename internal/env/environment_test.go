package env

import (
	"testing"

	"computorv2/internal/value"
)

func TestSetGetOverwrite(t *testing.T) {
	e := New()
	if _, ok := e.Get("x"); ok {
		t.Fatal("expected no binding for x initially")
	}
	e.Set("x", value.RationalFromInt64(5))
	v, ok := e.Get("x")
	if !ok || v.String() != "5" {
		t.Fatalf("got %v, %v, want 5, true", v, ok)
	}
	e.Set("x", value.RationalFromInt64(7))
	v, _ = e.Get("x")
	if v.String() != "7" {
		t.Errorf("overwrite failed: got %s, want 7", v.String())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e := New()
	e.Set("x", value.RationalFromInt64(1))

	child := e.Snapshot()
	child.Set("x", value.RationalFromInt64(99))
	child.Set("y", value.RationalFromInt64(2))

	if v, _ := e.Get("x"); v.String() != "1" {
		t.Errorf("parent mutated by child snapshot: x = %s", v.String())
	}
	if _, ok := e.Get("y"); ok {
		t.Error("parent should not see bindings added to the child snapshot")
	}
}
