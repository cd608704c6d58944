package main

import (
	"errors"
	"os"
	"testing"

	"github.com/malwarology/versioninfo/pkg/types"
)

const fixture = "csrss_win7.dat"

func TestDumpCommand(t *testing.T) {
	fixtureData, err := os.ReadFile(testFixturePath(t, fixture))
	if err != nil {
		t.Fatal(err)
	}
	embedded := append(make([]byte, 0x20), fixtureData...)
	embedded = append(embedded, 0xCC, 0xCC)

	tests := []struct {
		name           string
		data           []byte
		format         string
		offset         int
		wantErr        types.ErrKind
		wantErrAny     bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:   "dump text",
			data:   fixtureData,
			format: "text",
			wantContain: []string{
				`VS_VERSION_INFO "VS_VERSION_INFO" (wLength 920, wValueLength 52, wType 0) @0x0`,
				"FileVersion:    6.1.7600.16385",
				`CompanyName = "Microsoft Corporation"`,
				`Var "Translation" @0x374`,
			},
			wantNotContain: []string{"[non-standard key]", "StringChildren"},
		},
		{
			name:        "dump as JSON",
			data:        fixtureData,
			format:      "json",
			wantJSON:    true,
			wantContain: []string{`"Type": "VS_VERSION_INFO"`, `"Decoded": "CSRSS.Exe"`, `"Bytes": "VgBTAF8AVgBFAFIAUwBJAE8ATgBfAEkATgBGAE8A"`},
		},
		{
			name:        "dump as YAML",
			data:        fixtureData,
			format:      "yaml",
			wantContain: []string{"Type: VS_VERSION_INFO\n", "wLength: 920\n", "Decoded: Microsoft Corporation\n"},
		},
		{
			name:        "dump at offset",
			data:        embedded,
			format:      "text",
			offset:      0x20,
			wantContain: []string{"@0x20", "VarFileInfo @0x374"},
		},
		{
			name:       "bad format",
			data:       fixtureData,
			format:     "reg",
			wantErrAny: true,
		},
		{
			name:       "empty input",
			data:       []byte{},
			format:     "text",
			wantErr:    types.ErrKindEmptyInput,
			wantErrAny: true,
		},
		{
			name:       "truncated input",
			data:       fixtureData[:100],
			format:     "json",
			wantErr:    types.ErrKindTruncatedInput,
			wantErrAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			outFormat = tt.format
			offset = tt.offset

			args := []string{writeTemp(t, tt.data)}

			output, err := captureOutput(t, func() error {
				return runDump(args)
			})

			if (err != nil) != tt.wantErrAny {
				t.Fatalf("runDump() error = %v, wantErr %v", err, tt.wantErrAny)
			}
			if err != nil {
				var derr *types.Error
				if errors.As(err, &derr) && derr.Kind != tt.wantErr {
					t.Errorf("error kind = %v, want %v", derr.Kind, tt.wantErr)
				}
				if output != "" {
					t.Errorf("expected no output on error, got %q", output)
				}
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpMissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runDump([]string{"does-not-exist.res"})
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if exitCode(err) != 1 {
		t.Errorf("exit code = %d, want 1", exitCode(err))
	}
}

func TestDumpRecordLimit(t *testing.T) {
	resetFlags()
	maxRecords = 3

	_, err := captureOutput(t, func() error {
		return runDump([]string{testFixturePath(t, fixture)})
	})
	if !errors.Is(err, types.ErrLimitExceeded) {
		t.Fatalf("expected limit error, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Errorf("exit code = %d, want 2", exitCode(err))
	}
}
