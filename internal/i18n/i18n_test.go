package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const translationsYAML = `
Activities:
  de: Aktivitäten
  fr: Activités
Power Off:
  de: Ausschalten
Battery:
  fr: Batterie à 100%
`

func TestIdentity(t *testing.T) {
	assert.Equal(t, "Activities", Identity{}.Translate("Activities"))
}

func TestCatalog_Translate(t *testing.T) {
	translations, err := ParseTranslations([]byte(translationsYAML))
	require.NoError(t, err)

	testCases := []struct {
		locale string
		msgid  string
		want   string
	}{
		{locale: "de", msgid: "Activities", want: "Aktivitäten"},
		{locale: "de-CH", msgid: "Activities", want: "Aktivitäten"},
		{locale: "fr", msgid: "Activities", want: "Activités"},
		{locale: "fr", msgid: "Power Off", want: "Power Off"},
		{locale: "fr", msgid: "Battery", want: "Batterie à 100%"},
		{locale: "es", msgid: "Activities", want: "Activities"},
		{locale: "de", msgid: "50% done", want: "50% done"},
	}

	for _, tc := range testCases {
		t.Run(tc.locale+"/"+tc.msgid, func(t *testing.T) {
			c, err := NewCatalog(language.MustParse(tc.locale), translations)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Translate(tc.msgid))
		})
	}
}

func TestParseTranslations_Errors(t *testing.T) {
	_, err := ParseTranslations([]byte("Activities: [de]"))
	assert.ErrorContains(t, err, "failed to decode translations")

	_, err = ParseTranslations([]byte("Activities:\n  not_a_language!: x\n"))
	assert.ErrorContains(t, err, "invalid language")
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(translationsYAML), 0o644))

	tr, err := New("", path)
	require.NoError(t, err)
	assert.IsType(t, Identity{}, tr)

	tr, err = New("de", path)
	require.NoError(t, err)
	assert.Equal(t, "Ausschalten", tr.Translate("Power Off"))
	assert.Equal(t, language.German, tr.(*Catalog).Tag())

	_, err = New("de", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read translations")

	_, err = New("???", path)
	assert.ErrorContains(t, err, "invalid locale")
}
