package versioninfo

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malwarology/versioninfo/internal/testutil"
	"github.com/malwarology/versioninfo/pkg/types"
)

func FuzzDecode(f *testing.F) {
	f.Add(testutil.CSRSS().Bytes())
	f.Add(testutil.Root(nil, testutil.VarFileInfo(testutil.Var([2]uint16{0, 1200}))).Bytes())
	f.Add(testutil.Root(nil, testutil.Record{Key: "Bogus", Type: 1, Trailer: []byte{1, 2, 3}}).Bytes())
	f.Add([]byte{6, 0, 0, 0, 0, 0})
	f.Add([]byte{0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		root, end, err := DecodeWithOptions(data, 0, Options{CollectDiagnostics: true})
		if err != nil {
			var verr *types.Error
			if !errors.As(err, &verr) {
				t.Fatalf("untyped error %v", err)
			}
			if root != nil {
				t.Fatalf("partial tree returned with %v", err)
			}
			return
		}
		if end > len(data) || end < root.Range().End {
			t.Fatalf("end %d outside [%d, %d]", end, root.Range().End, len(data))
		}
		types.Walk(root, func(n types.Node) bool {
			r := n.Range()
			if r.Start < 0 || r.End > len(data) || r.Start > r.End {
				t.Fatalf("%s span %+v outside %d-byte input", n.Kind(), r, len(data))
			}
			return true
		})
	})
}

func TestDecodeConcurrent(t *testing.T) {
	data := loadCSRSS(t)
	want, wantEnd, err := Decode(data, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				got, end, err := Decode(data, 0)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, wantEnd, end)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}
