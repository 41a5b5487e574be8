package memory

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	b, err := New8BitRAMBank(1<<16, nil)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x1234, 0x42)
	if got := b.Read(0x1234); got != 0x42 {
		t.Errorf("Read(0x1234) = %#02x, want 0x42", got)
	}
}

func TestPowerOnZeroFills(t *testing.T) {
	b, err := New8BitRAMBank(256, nil)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x10, 0xFF)
	b.PowerOn()
	if got := b.Read(0x10); got != 0 {
		t.Errorf("Read(0x10) after PowerOn = %#02x, want 0x00", got)
	}
}

func TestNonPowerOfTwoSizeRejected(t *testing.T) {
	if _, err := New8BitRAMBank(100, nil); err == nil {
		t.Errorf("New8BitRAMBank(100, nil) succeeded, want error (100 isn't a power of 2)")
	}
}

func TestAliasingOnUndersizedBank(t *testing.T) {
	b, err := New8BitRAMBank(256, nil)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x00, 0x99)
	if got := b.Read(0x100); got != 0x99 {
		t.Errorf("Read(0x100) = %#02x, want 0x99 (should alias addr 0x00 on a 256-byte bank)", got)
	}
}

func TestLatestDatabusValFollowsParentChain(t *testing.T) {
	parent, _ := New8BitRAMBank(256, nil)
	child, _ := New8BitRAMBank(256, parent)
	parent.Write(0x01, 0xAB)
	if got := LatestDatabusVal(child); got != 0xAB {
		t.Errorf("LatestDatabusVal(child) = %#02x, want 0xAB (from parent)", got)
	}
}
