package binary

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func newTestReader(data []byte) *SafeReader {
	return NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mat")
}

func TestSafeReader_ReadAt(t *testing.T) {
	sr := newTestReader([]byte{0x01, 0x02, 0x03, 0x04})

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 1, "middle bytes"); err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if buf[0] != 0x02 || buf[1] != 0x03 {
		t.Errorf("ReadAt() = %v, want [2 3]", buf)
	}
}

func TestSafeReader_ReadAt_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		off      int64
		length   int
		contains string
	}{
		{"negative offset", -1, 1, "out of bounds"},
		{"offset at end", 4, 1, "out of bounds"},
		{"read past end", 2, 4, "exceed file size"},
	}

	sr := newTestReader([]byte{0x01, 0x02, 0x03, 0x04})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.length), tt.off, "test data")
			if err == nil {
				t.Fatal("ReadAt() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.contains)
			}
			if !strings.Contains(err.Error(), "test.mat") {
				t.Errorf("error %q should contain the path", err.Error())
			}
		})
	}
}

func TestRead_ByteOrder(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	sr := newTestReader(data)
	le, err := Read[uint32](sr, 0, "value")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if le != 0x04030201 {
		t.Errorf("little-endian Read() = %#x, want 0x04030201", le)
	}

	sr.SetOrder(binary.BigEndian)
	be, err := Read[uint32](sr, 0, "value")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if be != 0x01020304 {
		t.Errorf("big-endian Read() = %#x, want 0x01020304", be)
	}
}

func TestReader_Sequential(t *testing.T) {
	sr := newTestReader([]byte{0x05, 0x00, 0x00, 0x00, 'a', 'b', 'c', 0x00})
	r := NewReader(sr, 0)

	val, err := ReadValue[uint32](r, "tag")
	if err != nil {
		t.Fatalf("ReadValue() error = %v", err)
	}
	if val != 5 {
		t.Errorf("ReadValue() = %d, want 5", val)
	}
	if r.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", r.Offset())
	}

	s, err := r.ReadString(3, "name")
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if s != "abc" {
		t.Errorf("ReadString() = %q, want %q", s, "abc")
	}

	if r.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", r.Remaining())
	}
}

func TestReader_Align(t *testing.T) {
	sr := newTestReader(make([]byte, 32))

	tests := []struct {
		start int64
		want  int64
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
	}

	for _, tt := range tests {
		r := NewReader(sr, tt.start)
		r.Align(8)
		if r.Offset() != tt.want {
			t.Errorf("Align(8) from %d = %d, want %d", tt.start, r.Offset(), tt.want)
		}
	}
}

func TestFloat64s(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, []float64{1.5, -2.25})

	sr := newTestReader(buf.Bytes())
	got := sr.Float64s(buf.Bytes(), false)
	if len(got) != 2 || got[0] != 1.5 || got[1] != -2.25 {
		t.Errorf("Float64s() = %v, want [1.5 -2.25]", got)
	}
}

func TestFloat64s_Single(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, []float32{0.5, 3})

	sr := newTestReader(buf.Bytes())
	got := sr.Float64s(buf.Bytes(), true)
	if len(got) != 2 || got[0] != 0.5 || got[1] != 3 {
		t.Errorf("Float64s(single) = %v, want [0.5 3]", got)
	}
}
