package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malwarology/versioninfo/internal/testutil"
)

func TestDecodeFixedFileInfoFixture(t *testing.T) {
	data := testutil.LoadFixture(t, testutil.FixtureCSRSSWin7)

	ffi, cursor, err := DecodeFixedFileInfo(data, testutil.CSRSSFixedInfoOffset, len(data))
	require.NoError(t, err)
	assert.Equal(t, 92, cursor)

	assert.Equal(t, uint32(FixedFileInfoSignature), ffi.Signature)
	assert.Equal(t, []byte{0xbd, 0x04, 0xef, 0xfe}, ffi.SignatureRaw)
	assert.Equal(t, uint16(1), ffi.StrucVersionMajor)
	assert.Equal(t, uint16(0), ffi.StrucVersionMinor)
	assert.Equal(t, uint32(393217), ffi.FileVersionMS)
	assert.Equal(t, uint32(498089985), ffi.FileVersionLS)
	assert.Equal(t, uint32(393217), ffi.ProductVersionMS)
	assert.Equal(t, uint32(498089985), ffi.ProductVersionLS)
	assert.Equal(t, uint32(63), ffi.FileFlagsMask)
	assert.Equal(t, []byte{0x3f, 0, 0, 0}, ffi.FileFlagsMaskRaw)
	assert.Equal(t, uint32(0), ffi.FileFlags)
	assert.Equal(t, uint32(262148), ffi.FileOS)
	assert.Equal(t, uint32(1), ffi.FileType)
	assert.Equal(t, uint32(0), ffi.FileSubtype)
	assert.Equal(t, uint32(0), ffi.FileDateMS)
	assert.Equal(t, uint32(0), ffi.FileDateLS)
}

func TestDecodeFixedFileInfoRoundTrip(t *testing.T) {
	want := testutil.FixedInfo{
		Signature:         FixedFileInfoSignature,
		StrucVersionMinor: 2,
		StrucVersionMajor: 1,
		FileVersionMS:     0x000A0000,
		FileVersionLS:     0x4A610001,
		ProductVersionMS:  3,
		ProductVersionLS:  4,
		FileFlagsMask:     0x3F,
		FileFlags:         0x21,
		FileOS:            0x40004,
		FileType:          2,
		FileSubtype:       7,
		FileDateMS:        0x01D2,
		FileDateLS:        0xFFFFFFFF,
	}
	data := want.Bytes()
	require.Len(t, data, FixedFileInfoSize)

	ffi, _, err := DecodeFixedFileInfo(data, 0, len(data))
	require.NoError(t, err)
	assert.Equal(t, want.StrucVersionMinor, ffi.StrucVersionMinor)
	assert.Equal(t, want.StrucVersionMajor, ffi.StrucVersionMajor)
	assert.Equal(t, want.FileFlags, ffi.FileFlags)
	assert.Equal(t, want.FileSubtype, ffi.FileSubtype)
	assert.Equal(t, want.FileDateLS, ffi.FileDateLS)
}

func TestDecodeFixedFileInfoTruncated(t *testing.T) {
	data := testutil.CSRSSFixedInfo().Bytes()
	_, cursor, err := DecodeFixedFileInfo(data, 0, len(data)-1)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 0, cursor)
}
