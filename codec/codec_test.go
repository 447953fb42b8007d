package codec

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	uerrors "github.com/wippyai/unicode-conv/errors"
	"github.com/wippyai/unicode-conv/platform"
)

// fakePlatform counts backend calls and optionally overrides conversions for
// fault injection. It delegates to the portable backend by default.
type fakePlatform struct {
	wide       func(src []uint16, dst []byte) (int, uint32)
	multi      func(src []byte, srcLen int32, dst []uint16) (int, uint32)
	wideCalls  int
	multiCalls int
}

func (f *fakePlatform) WideToMulti(src []uint16, dst []byte) (int, uint32) {
	f.wideCalls++
	if f.wide != nil {
		return f.wide(src, dst)
	}
	return platform.Portable{}.WideToMulti(src, dst)
}

func (f *fakePlatform) MultiToWide(src []byte, srcLen int32, dst []uint16) (int, uint32) {
	f.multiCalls++
	if f.multi != nil {
		return f.multi(src, srcLen, dst)
	}
	return platform.Portable{}.MultiToWide(src, srcLen, dst)
}

func newTestCodec() (*Codec, *fakePlatform) {
	fake := &fakePlatform{}
	return New(WithPlatform(fake)), fake
}

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		want []byte
	}{
		{
			name: "ascii",
			src:  []uint16{'h', 'e', 'l', 'l', 'o'},
			want: []byte("hello"),
		},
		{
			name: "euro sign",
			src:  []uint16{0x20ac},
			want: []byte{0xe2, 0x82, 0xac},
		},
		{
			name: "surrogate pair",
			src:  []uint16{0xd83d, 0xde00}, // U+1F600
			want: []byte("\U0001F600"),
		},
		{
			name: "mixed",
			src:  []uint16{'a', 0x20ac, 0xd83d, 0xde00, 'z'},
			want: []byte("a€\U0001F600z"),
		},
	}

	c, _ := newTestCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToUTF8(tt.src)
			if err != nil {
				t.Fatalf("ToUTF8() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToUTF8() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToUTF16(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []uint16
	}{
		{
			name: "ascii",
			src:  []byte("hello"),
			want: []uint16{'h', 'e', 'l', 'l', 'o'},
		},
		{
			name: "euro sign",
			src:  []byte{0xe2, 0x82, 0xac},
			want: []uint16{0x20ac},
		},
		{
			name: "astral plane",
			src:  []byte("\U0001F600"),
			want: []uint16{0xd83d, 0xde00},
		},
	}

	c, _ := newTestCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToUTF16(tt.src)
			if err != nil {
				t.Fatalf("ToUTF16() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToUTF16() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	c, fake := newTestCodec()

	got8, err := c.ToUTF8(nil)
	if err != nil {
		t.Fatalf("ToUTF8(empty) error: %v", err)
	}
	if len(got8) != 0 {
		t.Errorf("ToUTF8(empty) = %v, want empty", got8)
	}

	got16, err := c.ToUTF16(nil)
	if err != nil {
		t.Fatalf("ToUTF16(empty) error: %v", err)
	}
	if len(got16) != 0 {
		t.Errorf("ToUTF16(empty) = %v, want empty", got16)
	}

	// Empty input must short-circuit before the backend.
	if fake.wideCalls != 0 || fake.multiCalls != 0 {
		t.Errorf("backend called %d+%d times for empty input, want 0",
			fake.wideCalls, fake.multiCalls)
	}
}

func TestRoundTrip(t *testing.T) {
	corpus := []string{
		"hello",
		"héllo wörld",
		"€",
		"日本語",
		"\U0001F600\U0001F680",
		"mixed € and \U0001F600 text",
	}

	c, _ := newTestCodec()
	for _, s := range corpus {
		t.Run(s, func(t *testing.T) {
			units, err := c.ToUTF16([]byte(s))
			if err != nil {
				t.Fatalf("ToUTF16() error: %v", err)
			}
			back, err := c.ToUTF8(units)
			if err != nil {
				t.Fatalf("ToUTF8() error: %v", err)
			}
			if string(back) != s {
				t.Errorf("round trip = %q, want %q", back, s)
			}
		})
	}
}

func TestEuroRoundTrip(t *testing.T) {
	c, _ := newTestCodec()

	utf8, err := c.ToUTF8([]uint16{0x20ac})
	if err != nil {
		t.Fatalf("ToUTF8() error: %v", err)
	}
	if diff := cmp.Diff([]byte{0xe2, 0x82, 0xac}, utf8); diff != "" {
		t.Fatalf("euro UTF-8 mismatch (-want +got):\n%s", diff)
	}

	units, err := c.ToUTF16(utf8)
	if err != nil {
		t.Fatalf("ToUTF16() error: %v", err)
	}
	if diff := cmp.Diff([]uint16{0x20ac}, units); diff != "" {
		t.Errorf("euro UTF-16 mismatch (-want +got):\n%s", diff)
	}
}

func TestToUTF8_UnpairedSurrogate(t *testing.T) {
	c, _ := newTestCodec()

	_, err := c.ToUTF8([]uint16{0xd800})
	if err == nil {
		t.Fatal("ToUTF8(unpaired surrogate) should fail")
	}

	var convErr *uerrors.Error
	if !stderrors.As(err, &convErr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if convErr.Direction != uerrors.DirectionUTF16ToUTF8 {
		t.Errorf("Direction = %q, want %q", convErr.Direction, uerrors.DirectionUTF16ToUTF8)
	}
	if convErr.Code == 0 {
		t.Error("error should carry a platform code")
	}
}

func TestToUTF16_InvalidByte(t *testing.T) {
	c, _ := newTestCodec()

	// lone continuation byte
	_, err := c.ToUTF16([]byte{0x80})
	if err == nil {
		t.Fatal("ToUTF16(invalid byte) should fail")
	}

	var convErr *uerrors.Error
	if !stderrors.As(err, &convErr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if convErr.Direction != uerrors.DirectionUTF8ToUTF16 {
		t.Errorf("Direction = %q, want %q", convErr.Direction, uerrors.DirectionUTF8ToUTF16)
	}
}

func TestMeasureFailureKind(t *testing.T) {
	fake := &fakePlatform{
		multi: func([]byte, int32, []uint16) (int, uint32) {
			return 0, 1113
		},
	}
	c := New(WithPlatform(fake))

	_, err := c.ToUTF16([]byte("hi"))
	if !stderrors.Is(err, &uerrors.Error{Direction: uerrors.DirectionUTF8ToUTF16, Kind: uerrors.KindSizeQuery}) {
		t.Errorf("measure failure should have kind size_query, got %v", err)
	}
	if fake.multiCalls != 1 {
		t.Errorf("backend called %d times, want 1", fake.multiCalls)
	}
}

func TestFillFailureKind(t *testing.T) {
	fake := &fakePlatform{
		multi: func(src []byte, srcLen int32, dst []uint16) (int, uint32) {
			if dst == nil {
				return len(src), 0 // measure succeeds
			}
			return 0, 1113 // fill fails
		},
	}
	c := New(WithPlatform(fake))

	_, err := c.ToUTF16([]byte("hi"))
	if !stderrors.Is(err, &uerrors.Error{Direction: uerrors.DirectionUTF8ToUTF16, Kind: uerrors.KindConversion}) {
		t.Errorf("fill failure should have kind conversion, got %v", err)
	}
	if fake.multiCalls != 2 {
		t.Errorf("backend called %d times, want 2", fake.multiCalls)
	}
}

func TestSafeInt32(t *testing.T) {
	if got, err := safeInt32(1); err != nil || got != 1 {
		t.Errorf("safeInt32(1) = %d, %v", got, err)
	}

	max := int(int32(1<<31 - 1))
	if got, err := safeInt32(max); err != nil || got != 1<<31-1 {
		t.Errorf("safeInt32(MaxInt32) = %d, %v", got, err)
	}

	if strconv.IntSize < 64 {
		t.Skip("overflow case requires 64-bit int")
	}
	over := int(int64(1) << 31)
	_, err := safeInt32(over)
	if err == nil {
		t.Fatal("safeInt32(1<<31) should fail")
	}
	if !stderrors.Is(err, &uerrors.Error{Direction: uerrors.DirectionUTF8ToUTF16, Kind: uerrors.KindOverflow}) {
		t.Errorf("overflow error kind mismatch: %v", err)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	utf8, err := ToUTF8([]uint16{'o', 'k'})
	if err != nil || string(utf8) != "ok" {
		t.Errorf("ToUTF8() = %q, %v", utf8, err)
	}

	units, err := ToUTF16([]byte("ok"))
	if err != nil {
		t.Fatalf("ToUTF16() error: %v", err)
	}
	if diff := cmp.Diff([]uint16{'o', 'k'}, units); diff != "" {
		t.Errorf("ToUTF16() mismatch (-want +got):\n%s", diff)
	}

	if Default() != Default() {
		t.Error("Default() should return the shared instance")
	}
}
