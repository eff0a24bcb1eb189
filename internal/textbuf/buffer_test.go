package textbuf

import "testing"

func TestNewBuffer(t *testing.T) {
	b := New(128)
	if b.Len() != 0 {
		t.Errorf("new buffer length = %d, want 0", b.Len())
	}
	if b.Cap() != 128 {
		t.Errorf("Cap() = %d, want 128", b.Cap())
	}
	if b.CountLines() != 1 {
		t.Errorf("empty buffer CountLines() = %d, want 1", b.CountLines())
	}
}

func TestNewBufferDefaultCapacity(t *testing.T) {
	b := New(0)
	if b.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", b.Cap(), DefaultCapacity)
	}
}

func TestInsertAt(t *testing.T) {
	b := New(16)

	if !b.InsertAt(0, 'b') {
		t.Fatal("InsertAt(0) failed")
	}
	if !b.InsertAt(0, 'a') {
		t.Fatal("InsertAt(0) failed")
	}
	if !b.InsertAt(2, 'c') {
		t.Fatal("InsertAt(2) failed")
	}

	if got := b.String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestInsertAtMiddleShiftsTail(t *testing.T) {
	b := FromString("held", 16)
	if !b.InsertAt(2, 'l') {
		t.Fatal("InsertAt failed")
	}
	if got := b.String(); got != "helld" {
		t.Errorf("String() = %q, want %q", got, "helld")
	}
}

func TestInsertAtBounds(t *testing.T) {
	b := FromString("ab", 16)
	if b.InsertAt(-1, 'x') {
		t.Error("InsertAt(-1) should fail")
	}
	if b.InsertAt(3, 'x') {
		t.Error("InsertAt past end should fail")
	}
	if got := b.String(); got != "ab" {
		t.Errorf("failed inserts modified buffer: %q", got)
	}
}

func TestInsertAtCapacity(t *testing.T) {
	b := New(3)
	for i, r := range "ab" {
		if !b.InsertAt(i, r) {
			t.Fatalf("InsertAt(%d) failed with free slots", i)
		}
	}
	if b.InsertAt(2, 'c') {
		t.Error("insert into the reserved final slot should fail")
	}
	if got := b.String(); got != "ab" {
		t.Errorf("overflowing insert modified buffer: %q", got)
	}
}

func TestInsertWithOneSlotFreeIsUnchanged(t *testing.T) {
	// A buffer holding capacity-1 code points rejects every insert and
	// stays byte-for-byte identical.
	b := FromString("ab", 3)
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	for _, offset := range []int{0, 1, 2} {
		if b.InsertAt(offset, 'x') {
			t.Errorf("InsertAt(%d) succeeded with one slot free", offset)
		}
	}
	if got := b.String(); got != "ab" {
		t.Errorf("buffer = %q, want %q", got, "ab")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestDeleteAt(t *testing.T) {
	b := FromString("abc", 16)

	r, ok := b.DeleteAt(1)
	if !ok || r != 'b' {
		t.Fatalf("DeleteAt(1) = %q, %t", r, ok)
	}
	if got := b.String(); got != "ac" {
		t.Errorf("String() = %q, want %q", got, "ac")
	}

	if _, ok := b.DeleteAt(2); ok {
		t.Error("DeleteAt past end should fail")
	}
	if _, ok := b.DeleteAt(-1); ok {
		t.Error("DeleteAt(-1) should fail")
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	b := FromString("one\ntwo", 32)
	before := b.String()

	if !b.InsertAt(3, 'x') {
		t.Fatal("insert failed")
	}
	if r, ok := b.DeleteAt(3); !ok || r != 'x' {
		t.Fatalf("delete = %q, %t", r, ok)
	}

	if got := b.String(); got != before {
		t.Errorf("round trip: %q, want %q", got, before)
	}
}

func TestLineStart(t *testing.T) {
	b := FromString("ab\ncde\n\nf", 32)

	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{1, 3},
		{2, 7},
		{3, 8},
		{4, 9},  // past last line: buffer length
		{99, 9}, // far past: buffer length
	}
	for _, tt := range tests {
		if got := b.LineStart(tt.line); got != tt.want {
			t.Errorf("LineStart(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestLineLen(t *testing.T) {
	b := FromString("ab\ncde\n\nf", 32)

	tests := []struct {
		line int
		want int
	}{
		{0, 2},
		{1, 3},
		{2, 0},
		{3, 1},
		{4, 0},
	}
	for _, tt := range tests {
		if got := b.LineLen(tt.line); got != tt.want {
			t.Errorf("LineLen(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"a\nb", 2},
		{"a\nb\n", 3},
		{"\n\n\n", 4},
	}
	for _, tt := range tests {
		b := FromString(tt.text, 32)
		if got := b.CountLines(); got != tt.want {
			t.Errorf("CountLines(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFromStringTruncatesAtCapacity(t *testing.T) {
	// Seeding honors the reserved final slot too, so a seeded buffer is
	// never in a state inserts could not have produced.
	b := FromString("abcdef", 3)
	if got := b.String(); got != "ab" {
		t.Errorf("String() = %q, want %q", got, "ab")
	}
}

func TestAt(t *testing.T) {
	b := FromString("xy", 8)
	if r, ok := b.At(1); !ok || r != 'y' {
		t.Errorf("At(1) = %q, %t", r, ok)
	}
	if _, ok := b.At(2); ok {
		t.Error("At(2) should be out of range")
	}
	if _, ok := b.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
}
