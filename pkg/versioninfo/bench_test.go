package versioninfo

import (
	"testing"

	"github.com/malwarology/versioninfo/internal/testutil"
)

func BenchmarkDecode_CSRSS(b *testing.B) {
	data := testutil.LoadFixture(b, testutil.FixtureCSRSSWin7)
	benchmarkDecode(b, data, DefaultOptions())
}

func BenchmarkDecode_CSRSSDiagnostics(b *testing.B) {
	data := testutil.LoadFixture(b, testutil.FixtureCSRSSWin7)
	benchmarkDecode(b, data, Options{CollectDiagnostics: true})
}

// Many small translation values stress the Var loop.
func BenchmarkDecode_ManyTranslations(b *testing.B) {
	pairs := make([][2]uint16, 4000)
	for i := range pairs {
		pairs[i] = [2]uint16{uint16(i), 1200}
	}
	data := testutil.Root(nil, testutil.VarFileInfo(testutil.Var(pairs...))).Bytes()
	benchmarkDecode(b, data, DefaultOptions())
}

func benchmarkDecode(b *testing.B, data []byte, opts Options) {
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := DecodeWithOptions(data, 0, opts); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}
