package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/malwarology/versioninfo/internal/testutil"
	"github.com/malwarology/versioninfo/pkg/types"
	"github.com/malwarology/versioninfo/pkg/versioninfo"
)

func decodeFixture(t *testing.T) *types.RootInfo {
	t.Helper()
	root, _, err := versioninfo.Decode(testutil.LoadFixture(t, testutil.FixtureCSRSSWin7), 0)
	require.NoError(t, err)
	return root
}

func TestPrinter_Print_JSON(t *testing.T) {
	root := decodeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).Print(root))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "VS_VERSION_INFO", result["Type"])

	body := result["Struct"].(map[string]any)
	assert.EqualValues(t, 920, body["wLength"])
	assert.EqualValues(t, 52, body["wValueLength"])
	assert.EqualValues(t, 1, body["Padding1"])
	assert.NotContains(t, body, "Padding2")
	assert.Len(t, body["Children"], 2)

	ffi := body["Value"].(map[string]any)
	assert.Equal(t, "VS_FIXEDFILEINFO", ffi["Type"])

	assert.Contains(t, buf.String(), "© Microsoft Corporation. All rights reserved.")
}

func TestPrinter_Print_CompactJSON(t *testing.T) {
	root := decodeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatJSON}).Print(root))

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")

	compact, err := JSON(root)
	require.NoError(t, err)
	assert.Equal(t, string(compact), out)
}

func TestPrinter_Print_YAML(t *testing.T) {
	root := decodeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatYAML, Indent: 2}).Print(root))
	t.Logf("YAML output:\n%s", buf.String())

	assert.True(t, strings.HasPrefix(buf.String(), "Type: VS_VERSION_INFO\n"))

	var result map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	body := result["Struct"].(map[string]any)
	assert.Equal(t, 920, body["wLength"])

	children := body["Children"].([]any)
	require.Len(t, children, 2)
	assert.Equal(t, "StringFileInfo", children[0].(map[string]any)["Type"])
	assert.Equal(t, "VarFileInfo", children[1].(map[string]any)["Type"])
}

func TestPrinter_Print_Text(t *testing.T) {
	root := decodeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatText, Indent: 2}).Print(root))
	output := buf.String()
	t.Logf("Text output:\n%s", output)

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, `VS_VERSION_INFO "VS_VERSION_INFO" (wLength 920, wValueLength 52, wType 0) @0x0`, lines[0])
	assert.Equal(t, "  VS_FIXEDFILEINFO @0x28", lines[1])

	assert.Contains(t, output, "    FileVersion:    6.1.7600.16385\n")
	assert.Contains(t, output, "    FileFlagsMask:  VS_FF_DEBUG|")
	assert.Contains(t, output, "    FileType:       VFT_APP\n")
	assert.Contains(t, output, "  StringFileInfo @0x5c\n")
	assert.Contains(t, output, `    StringTable "040904B0" (language 0x0409, code page 1200`)
	assert.Contains(t, output, `      CompanyName = "Microsoft Corporation"`+"\n")
	assert.Contains(t, output, "  VarFileInfo @0x354\n")
	assert.Contains(t, output, `    Var "Translation" @0x374`+"\n")
	assert.Contains(t, output, "      language 0x0409, code page 1200")

	// the fixed info block comes before the first child
	assert.Less(t, strings.Index(output, "VS_FIXEDFILEINFO"), strings.Index(output, "StringFileInfo"))
}

func TestPrinter_Print_TextMarks(t *testing.T) {
	data := testutil.Root(nil,
		testutil.Record{Key: "StrangeInfo", Type: 1, Children: []testutil.Record{
			testutil.String("Comments", "hello"),
		}},
	).Bytes()
	root, _, err := versioninfo.Decode(data, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatText, Indent: 2}).Print(root))
	output := buf.String()

	assert.Contains(t, output, "VarFileInfo @0x28 [StringChildren] [non-standard key]")
	assert.Contains(t, output, `    Comments = "hello"`)
}

func TestPrinter_PrintValue(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatText})

	require.NoError(t, p.PrintValue(types.NewLanguageCode(0x0409, 1252, "windows-1252")))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "0x04e4", result["CodePage"].(map[string]any)["Hexadecimal"])
	assert.Contains(t, buf.String(), "\n  \"LangID\"")
}

func TestPrinter_PrintReport(t *testing.T) {
	data := testutil.Root(nil,
		testutil.StringFileInfo(testutil.StringTable("zzzz", testutil.String("A", "b"))),
	).Bytes()
	report, err := versioninfo.Inspect(data, 0, versioninfo.Options{})
	require.NoError(t, err)
	require.True(t, report.HasWarnings())

	var text bytes.Buffer
	require.NoError(t, New(&text, Options{Format: FormatText}).PrintReport(report))
	assert.Contains(t, text.String(), "StringTable")

	var js bytes.Buffer
	require.NoError(t, New(&js, DefaultOptions()).PrintReport(report))

	var result struct {
		Root        map[string]any
		End         int
		Diagnostics []map[string]any
		Summary     map[string]int
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &result))
	assert.Equal(t, len(data), result.End)
	assert.Equal(t, "VS_VERSION_INFO", result.Root["Type"])
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, report.Summary.Warnings, result.Summary["warnings"])
}

func TestPrinter_PrintStrings(t *testing.T) {
	root := decodeFixture(t)

	var text bytes.Buffer
	require.NoError(t, New(&text, Options{Format: FormatText}).PrintStrings(root))
	assert.True(t, strings.HasPrefix(text.String(), "[040904B0]\nCompanyName = Microsoft Corporation\n"))
	assert.Contains(t, text.String(), "ProductVersion = 6.1.7600.16385\n")
	assert.Equal(t, 9, strings.Count(text.String(), "\n"))

	var js bytes.Buffer
	require.NoError(t, New(&js, Options{Format: FormatJSON}).PrintStrings(root))
	assert.True(t, strings.HasPrefix(js.String(), `{"040904B0":{"CompanyName":"Microsoft Corporation","FileDescription":`))
}

func TestStrings_StringShaped(t *testing.T) {
	data := testutil.Root(nil,
		testutil.StringFileInfo(
			testutil.StringTable("040904B0", testutil.String("A", "1")),
			testutil.StringTable("040704B0", testutil.String("B", "2"), testutil.String("C", "3")),
		),
		testutil.Record{Key: "VarFileInfo", Type: 1, Children: []testutil.Record{
			testutil.String("D", "4"),
		}},
	).Bytes()
	root, _, err := versioninfo.Decode(data, 0)
	require.NoError(t, err)

	groups := Strings(root)
	require.Len(t, groups, 3)
	assert.Equal(t, "040904B0", groups[0].Name)
	assert.Len(t, groups[0].Strings, 1)
	assert.Equal(t, "040704B0", groups[1].Name)
	assert.Len(t, groups[1].Strings, 2)
	assert.Equal(t, "VarFileInfo", groups[2].Name)
	assert.Equal(t, "4", groups[2].Strings[0].Text())
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml", "text"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("reg")
	require.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, FormatJSON, opts.Format)
	require.Equal(t, DefaultIndentSize, opts.Indent)
}

func TestPrinter_NilRoot(t *testing.T) {
	require.Error(t, New(&bytes.Buffer{}, DefaultOptions()).Print(nil))
}
