package util

import (
	"testing"

	"github.com/git-l10n/git-po-writer/po"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogJSON(t *testing.T) {
	data := []byte(`{
  "header": {
    "Project-Id-Version": "git 2.40",
    "Plural-Forms": "nplurals=2; plural=(n != 1);",
    "X-Generator": "ignored"
  },
  "entries": [
    {
      "msgid": "Hello",
      "msgstr": "你好",
      "translator_comments": "greeting",
      "extracted_comments": "TRANSLATORS: keep it short",
      "reference": "hello.c:10",
      "msgctxt": "menu"
    },
    {
      "msgid": "One file",
      "msgid_plural": "%d files",
      "msgstr_plural": ["一个文件", "%d 个文件"],
      "flag": "c-format",
      "fuzzy": true
    },
    {
      "msgid": "apple",
      "msgid_plural": "apples",
      "msgstr": ["Apfel", "Äpfel"]
    },
    {
      "msgid": "Untranslated"
    }
  ]
}`)
	cat, err := ParseCatalogJSON(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		po.ProjectIDVersion: "git 2.40",
		po.PluralForms:      "nplurals=2; plural=(n != 1);",
	}, cat.Header)
	require.Len(t, cat.Messages, 4)

	assert.Equal(t, &po.Message{
		ID:                 "Hello",
		Str:                "你好",
		TranslatorComments: "greeting",
		ExtractedComments:  "TRANSLATORS: keep it short",
		Reference:          "hello.c:10",
		Context:            "menu",
	}, cat.Messages[0])

	assert.Equal(t, "%d files", cat.Messages[1].Plural)
	assert.Equal(t, []string{"一个文件", "%d 个文件"}, cat.Messages[1].StrPlural)
	assert.Equal(t, "fuzzy, c-format", cat.Messages[1].Flag)

	assert.Equal(t, []string{"Apfel", "Äpfel"}, cat.Messages[2].StrPlural)
	assert.Equal(t, "", cat.Messages[3].Str)
}

func TestParseCatalogJSONArrayAndHeaderMeta(t *testing.T) {
	cat, err := ParseCatalogJSON([]byte("\xef\xbb\xbf" + `[{"msgid": "a", "msgstr": "b", "fuzzy": true}]`))
	require.NoError(t, err)
	require.Len(t, cat.Messages, 1)
	assert.Equal(t, "fuzzy", cat.Messages[0].Flag)
	assert.Empty(t, cat.Header)

	cat, err = ParseCatalogJSON([]byte(`{
  "header": "Project-Id-Version: git\nContent-Type: text/plain; charset=UTF-8\nLanguage: zh_CN\n",
  "entries": []
}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		po.ProjectIDVersion: "git",
		po.ContentType:      "text/plain; charset=UTF-8",
	}, cat.Header)
	assert.Empty(t, cat.Messages)
}

func TestParseCatalogJSONFallbackToGjson(t *testing.T) {
	// The closing brace is missing.
	data := []byte(`{"header": {"Last-Translator": "Jiang Xin"},
 "entries": [{"msgid": "a", "msgstr": "b"}, {"msgid": "c", "msgstr": ["d"]}]`)
	cat, err := ParseCatalogJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "Jiang Xin", cat.Header[po.LastTranslator])
	require.Len(t, cat.Messages, 2)
	assert.Equal(t, "b", cat.Messages[0].Str)
	assert.Equal(t, "d", cat.Messages[1].Str)
}

func TestParseCatalogJSONErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		errContains string
	}{
		{
			name:        "missing msgid",
			data:        `{"entries": [{"msgstr": "orphan"}]}`,
			errContains: "entry #1",
		},
		{
			name:        "plural without strings",
			data:        `{"entries": [{"msgid": "file", "msgid_plural": "files"}]}`,
			errContains: po.ErrNoPluralStrings.Error(),
		},
		{
			name:        "list msgstr without plural",
			data:        `{"entries": [{"msgid": "file", "msgstr": ["a", "b"]}]}`,
			errContains: "msgid_plural is missing",
		},
		{
			name:        "wrong type",
			data:        `{"entries": {"msgid": "file"}}`,
			errContains: "decode catalog JSON",
		},
		{
			name:        "not json at all",
			data:        `{{{`,
			errContains: "decode catalog JSON",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalogJSON([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDetectCatalogFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want CatalogFormat
	}{
		{"json object", "catalog.txt", []byte(` {"entries": []}`), FormatJSON},
		{"json array", "-", []byte(`[]`), FormatJSON},
		{"mo little endian", "x.bin", []byte{0xde, 0x12, 0x04, 0x95, 0, 0, 0, 0}, FormatMO},
		{"mo big endian", "x.bin", []byte{0x95, 0x04, 0x12, 0xde, 0, 0, 0, 0}, FormatMO},
		{"json by extension", "empty.JSON", nil, FormatJSON},
		{"mo by extension", "zh_CN.gmo", []byte("xx"), FormatMO},
		{"unknown", "zh_CN.po", []byte(`msgid ""`), FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCatalogFormat(tt.file, tt.data))
		})
	}
}

func TestReadCatalogUnknownFormat(t *testing.T) {
	_, err := ReadCatalog("po/zh_CN.po", []byte(`msgid ""`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown catalog format")
}
