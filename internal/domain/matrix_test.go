package domain

import "testing"

func TestMatrixSetAt(t *testing.T) {
	m := NewMatrix(3)
	if m.Size() != 3 {
		t.Fatalf("size = %d, want 3", m.Size())
	}

	m.Set(0, 2, 4)
	m.Set(2, 0, 5)

	if got := m.At(0, 2); got != 4 {
		t.Errorf("At(0,2) = %v, want 4", got)
	}
	if got := m.At(2, 0); got != 5 {
		t.Errorf("At(2,0) = %v, want 5", got)
	}

	rows := m.Rows()
	rows[0][2] = 99
	if m.At(0, 2) != 4 {
		t.Errorf("Rows must return a copy")
	}
}

func TestMatrixOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out of range index")
		}
	}()
	NewMatrix(2).At(2, 0)
}
