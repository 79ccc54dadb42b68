package vertexset_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dominationlab/unidom/vertexset"
)

func TestAddContainsRemove(t *testing.T) {
	s := vertexset.New(5)
	if s.Size() != 0 {
		t.Fatalf("new set size = %d, want 0", s.Size())
	}
	if err := s.Add(2); err != nil {
		t.Fatalf("Add(2): %v", err)
	}
	if !s.Contains(2) {
		t.Fatalf("Contains(2) = false, want true")
	}
	if s.Contains(3) {
		t.Fatalf("Contains(3) = true, want false")
	}
	if err := s.Add(2); err == nil {
		t.Fatalf("Add(2) twice: want error")
	}
	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove(2): %v", err)
	}
	if s.Contains(2) {
		t.Fatalf("Contains(2) after remove = true, want false")
	}
}

func TestRemovePopRequiresLast(t *testing.T) {
	s := vertexset.New(5)
	_ = s.Add(0)
	_ = s.Add(1)
	if err := s.RemovePop(0); !errors.Is(err, vertexset.ErrNotLast) {
		t.Fatalf("RemovePop(0): got %v, want ErrNotLast", err)
	}
	if err := s.RemovePop(1); err != nil {
		t.Fatalf("RemovePop(1): %v", err)
	}
	if s.Size() != 1 {
		t.Fatalf("size after RemovePop = %d, want 1", s.Size())
	}
}

func TestResetFullAndElements(t *testing.T) {
	s := vertexset.New(1)
	s.ResetFull(4)
	if s.Size() != 4 {
		t.Fatalf("size = %d, want 4", s.Size())
	}
	want := []int{0, 1, 2, 3}
	if got := s.Elements(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := vertexset.New(3)
	_ = s.Add(0)
	c := s.Clone()
	_ = s.Add(1)
	if c.Contains(1) {
		t.Fatalf("clone observed mutation of original")
	}
}

func TestOutOfCapacity(t *testing.T) {
	s := vertexset.New(2)
	if err := s.Add(5); !errors.Is(err, vertexset.ErrCapacity) {
		t.Fatalf("Add(5): got %v, want ErrCapacity", err)
	}
}

func TestResetSentinelSizeExceedsCapacity(t *testing.T) {
	s := vertexset.New(1)
	s.ResetSentinel(3)
	if s.Capacity() != 3 {
		t.Fatalf("Capacity() = %d, want 3", s.Capacity())
	}
	if s.Size() != 4 {
		t.Fatalf("Size() = %d, want 4 (capacity+1)", s.Size())
	}
	for v := 0; v < 3; v++ {
		if s.Contains(v) {
			t.Fatalf("Contains(%d) = true, want false: sentinel holds no real members", v)
		}
	}
}
