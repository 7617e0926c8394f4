package vstack

import "testing"

func TestPushPopLIFO(t *testing.T) {
	s := New()
	a, markA := s.Push(64)
	for i := range a {
		a[i] = byte(i)
	}
	b, markB := s.Push(64)
	for i := range b {
		b[i] = byte(255 - i)
	}
	s.Pop(markB)
	s.Pop(markA)
	if s.inlineCursor != 0 {
		t.Fatalf("expected cursor rewound to 0, got %d", s.inlineCursor)
	}
}

func TestPushBeyondInlineBlockGrowsHeapChunk(t *testing.T) {
	s := New()
	buf, mark := s.Push(inlineBlockSize + 1024)
	if len(buf) != inlineBlockSize+1024 {
		t.Fatalf("expected buffer of requested size, got %d", len(buf))
	}
	if len(s.chunks) != 1 {
		t.Fatalf("expected exactly one heap chunk, got %d", len(s.chunks))
	}
	s.Pop(mark)
	if len(s.chunks) != 0 {
		t.Fatalf("expected heap chunk released, got %d remaining", len(s.chunks))
	}
}

func TestBorrowReleaseRoundTrip(t *testing.T) {
	s := Borrow()
	_, mark := s.Push(16)
	s.Pop(mark)
	Release(s)
	s2 := Borrow()
	if s2.inlineCursor != 0 {
		t.Fatalf("expected a released stack to come back empty, got cursor %d", s2.inlineCursor)
	}
}
