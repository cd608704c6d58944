// Package versioninfo decodes the VS_VERSIONINFO resource of Windows PE
// files into a tree of typed records.
//
// # Overview
//
// A version resource is a tree of self-describing records. Every record
// starts with three little-endian WORDs (wLength, wValueLength, wType), a
// NUL-terminated UTF-16LE key and zero WORDs of padding:
//
//	VS_VERSION_INFO
//	├── VS_FIXEDFILEINFO          (52 bytes, when wValueLength == 52)
//	├── StringFileInfo
//	│   └── StringTable "040904B0"
//	│       ├── String CompanyName = "..."
//	│       └── ...
//	└── VarFileInfo
//	    └── Var "Translation"
//	        └── 0x0409 / 1200
//
// # Decoding
//
// The caller locates the resource bytes (for example through a PE resource
// directory walker) and passes them in:
//
//	root, end, err := versioninfo.Decode(data, 0)
//	if err != nil {
//	    var verr *types.Error
//	    if errors.As(err, &verr) {
//	        log.Printf("%s at %#x", verr.Kind, verr.Offset)
//	    }
//	}
//
// Malformed input that keeps offsets trustworthy (non-standard keys, bad
// language keys, missing children, unclassifiable containers) degrades to
// markers in the tree. Input that breaks offset bookkeeping aborts the whole
// decode with a *types.Error; no partial tree is returned.
//
// Inspect additionally collects a diagnostics report of every degraded
// condition.
//
// # Safety
//
// Decoding never recurses over siblings: every record list is read by an
// explicit loop, and nesting depth is fixed by the format. The number of
// records per decode is capped (Options.MaxRecords). Decoders hold per-call
// state only, so independent buffers may be decoded concurrently.
package versioninfo
