package irq

import "testing"

func TestLatchRaiseAck(t *testing.T) {
	var l Latch
	if l.Raised() {
		t.Fatalf("new Latch reports Raised()")
	}
	l.Raise()
	if !l.Raised() {
		t.Fatalf("Raised() false after Raise()")
	}
	l.Ack()
	if l.Raised() {
		t.Fatalf("Raised() true after Ack()")
	}
}

func TestLatchRaiseIsIdempotent(t *testing.T) {
	var l Latch
	l.Raise()
	l.Raise()
	if !l.Raised() {
		t.Fatalf("Raised() false after two Raise() calls")
	}
}

var _ Sender = (*Latch)(nil)
