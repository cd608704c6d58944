package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malwarology/versioninfo/internal/testutil"
)

func TestDecodeHeaderFixture(t *testing.T) {
	data := testutil.LoadFixture(t, testutil.FixtureCSRSSWin7)

	tests := []struct {
		name        string
		off         int
		boundValue  bool
		length      uint16
		valueLength uint16
		typ         uint16
		key         string
		padding     int
		cursor      int
	}{
		{"VS_VERSION_INFO", 0, false, 920, 52, 0, "VS_VERSION_INFO", 1, 40},
		{"StringFileInfo", testutil.CSRSSStringFileInfo, false, 758, 0, 1, "StringFileInfo", 0, 128},
		{"StringTable", testutil.CSRSSStringTable, false, 722, 0, 1, "040904B0", 0, 152},
		{"String with padding", testutil.CSRSSCompanyName, false, 76, 22, 1, "CompanyName", 1, 184},
		{"String without padding", testutil.CSRSSInternalName, false, 52, 10, 1, "InternalName", 0, 468},
		{"VarFileInfo", testutil.CSRSSVarFileInfo, false, 68, 0, 1, "VarFileInfo", 1, 884},
		{"Var", testutil.CSRSSVar, true, 36, 4, 0, "Translation", 1, 916},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := DecodeHeader(data, tt.off, HeaderOptions{BoundValue: tt.boundValue})
			require.NoError(t, err)
			assert.Equal(t, tt.off, h.Start)
			assert.Equal(t, tt.length, h.Length)
			assert.Equal(t, tt.valueLength, h.ValueLength)
			assert.Equal(t, tt.typ, h.Type)
			assert.Equal(t, tt.key, h.Key.Text)
			assert.Equal(t, testutil.UTF16Z(tt.key)[:2*len(tt.key)], h.Key.Raw)
			assert.Equal(t, tt.padding, h.Padding)
			assert.Equal(t, tt.cursor, h.Cursor)
			assert.Equal(t, tt.off+int(tt.length), h.RecordEnd)
			assert.False(t, h.Clamped)
		})
	}
}

func TestDecodeHeaderBoundValueKeepsZeroLangID(t *testing.T) {
	data := testutil.Var([2]uint16{0x0000, 0x04B0}).Bytes()
	require.Len(t, data, 36)

	h, err := DecodeHeader(data, 0, HeaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Padding, "unbounded padding swallows the zero LangID")
	assert.Equal(t, 34, h.Cursor)

	h, err = DecodeHeader(data, 0, HeaderOptions{BoundValue: true})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Padding)
	assert.Equal(t, 32, h.Cursor)
	assert.Equal(t, 32, h.ValueStart())
}

func TestDecodeHeaderAlignValueKeepsZeroSignature(t *testing.T) {
	data := testutil.CSRSS().Bytes()
	copy(data[testutil.CSRSSFixedInfoOffset:], []byte{0, 0, 0, 0})

	h, err := DecodeHeader(data, 0, HeaderOptions{})
	require.NoError(t, err)
	// dwStrucVersion's low WORD is zero too
	assert.Equal(t, 4, h.Padding, "unbounded padding swallows the zeroed dwSignature")
	assert.Equal(t, 46, h.Cursor)

	h, err = DecodeHeader(data, 0, HeaderOptions{AlignValue: true})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Padding)
	assert.Equal(t, testutil.CSRSSFixedInfoOffset, h.Cursor)
}

func TestDecodeHeaderAlignValueIgnoredWithoutValue(t *testing.T) {
	// wValueLength 0: padding keeps running up to the next nonzero WORD.
	data := append(testutil.Record{Key: "AB", Type: 1}.Bytes(), 0, 0, 0, 0)
	data[0] = byte(len(data))

	h, err := DecodeHeader(data, 0, HeaderOptions{AlignValue: true})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Padding)
	assert.Equal(t, len(data), h.Cursor)
}

func TestDecodeHeaderTruncated(t *testing.T) {
	_, err := DecodeHeader([]byte{1, 0, 2, 0}, 0, HeaderOptions{})
	require.ErrorIs(t, err, ErrTruncated)

	data := testutil.String("K", "v").Bytes()
	_, err = DecodeHeader(data, 0, HeaderOptions{Limit: 5})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeHeaderClampsToLimit(t *testing.T) {
	r := testutil.String("Key", "value")
	r.LengthDelta = 100
	data := r.Bytes()

	h, err := DecodeHeader(data, 0, HeaderOptions{})
	require.NoError(t, err)
	assert.True(t, h.Clamped)
	assert.Equal(t, len(data), h.RecordEnd)
	assert.Equal(t, "Key", h.Key.Text)
}

func TestDecodeHeaderKeyBoundedByRecord(t *testing.T) {
	// wLength says 10 bytes: the key read must stop at byte 10 even though
	// the buffer continues.
	r := testutil.Record{Key: "LongKeyName", Type: 1, Length: testutil.U16(10)}
	data := append(r.Bytes(), 'Z', 0, 0, 0)

	h, err := DecodeHeader(data, 0, HeaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Lo", h.Key.Text)
	assert.Equal(t, 10, h.Cursor)
	assert.Equal(t, 0, h.Padding)
}

func TestDecodeHeaderShortRecord(t *testing.T) {
	r := testutil.Record{Key: "", Type: 0, Length: testutil.U16(2)}
	data := r.Bytes()

	h, err := DecodeHeader(data, 0, HeaderOptions{})
	require.NoError(t, err)
	assert.True(t, h.ShortRecord())
	assert.Equal(t, HeaderSize, h.RecordEnd)
	assert.Empty(t, h.Key.Raw)
}

func TestDecodeHeaderBadKey(t *testing.T) {
	r := testutil.Record{KeyRaw: []byte{0x00, 0xDC, 'A', 0, 0, 0}, Type: 1}
	_, err := DecodeHeader(r.Bytes(), 0, HeaderOptions{})
	require.ErrorIs(t, err, ErrInvalidUTF16)
}

func TestPeekFields(t *testing.T) {
	data := testutil.LoadFixture(t, testutil.FixtureCSRSSWin7)

	l, vl, typ, ok := PeekFields(data, testutil.CSRSSVar, len(data))
	require.True(t, ok)
	assert.Equal(t, uint16(36), l)
	assert.Equal(t, uint16(4), vl)
	assert.Equal(t, uint16(0), typ)

	_, _, _, ok = PeekFields(data, 916, 920)
	assert.False(t, ok)
}
