package mill

import "testing"

func TestTextRoundTrip(t *testing.T) {
	s := "BBEEEEEBEEEEWEWWBWWEEEBE"
	b, err := DecodeText(s)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got := b.EncodeText(); got != s {
		t.Fatalf("EncodeText(DecodeText(s)) = %q, want %q", got, s)
	}
}

func TestDecodeTextErrors(t *testing.T) {
	if _, err := DecodeText("tooshort"); err == nil {
		t.Fatalf("expected ErrEncoding for short string")
	}
	bad := "X" + "EEEEEEEEEEEEEEEEEEEEEEE"
	if _, err := DecodeText(bad); err == nil {
		t.Fatalf("expected ErrEncoding for invalid character")
	}
}

func TestEncodeDecodeBoardRoundTrip(t *testing.T) {
	var b Board
	b.PlaceStone(2, 0, White)
	b.PlaceStone(1, 3, Black)
	b.PlaceStone(0, 7, White)

	got, err := DecodeText(b.EncodeText())
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != b {
		t.Fatalf("DecodeText(EncodeText(b)) = %+v, want %+v", got, b)
	}
}
