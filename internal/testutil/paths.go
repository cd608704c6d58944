package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture paths relative to the repository root.
const (
	// FixtureCSRSSWin7 is the 920-byte VS_VERSIONINFO resource of csrss.exe
	// from Windows 7 (file offset 0x1798-0x1b30).
	FixtureCSRSSWin7 = "testdata/csrss_win7.dat"
)

// Offsets inside FixtureCSRSSWin7.
const (
	CSRSSLength            = 920
	CSRSSFixedInfoOffset   = 40
	CSRSSStringFileInfo    = 92
	CSRSSStringTable       = 128
	CSRSSCompanyName       = 152
	CSRSSInternalName      = 436
	CSRSSVarFileInfo       = 852
	CSRSSVar               = 884
	CSRSSTranslationValues = 916
)

// LoadFixture reads a fixture file given its path from the repository root.
func LoadFixture(t testing.TB, relativePath string) []byte {
	t.Helper()
	data, err := os.ReadFile(ResolvePath(t, relativePath))
	require.NoError(t, err)
	return data
}

// ResolvePath finds relativePath from the current package directory by
// walking up towards the repository root.
func ResolvePath(t testing.TB, relativePath string) string {
	t.Helper()

	dir := ""
	for range 6 {
		candidate := filepath.Join(dir, relativePath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		dir = filepath.Join(dir, "..")
	}

	t.Fatalf("fixture not found at any candidate path starting from: %s", relativePath)
	return ""
}
