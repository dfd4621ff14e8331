package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	for s, want := range map[string]Unit{
		"words":     UnitWords,
		"chars":     UnitChars,
		"raw_chars": UnitRawChars,
	} {
		u, err := ParseUnit("doc_unit", s)
		require.NoError(t, err)
		assert.Equal(t, want, u)
		assert.Equal(t, s, u.String())
	}

	_, err := ParseUnit("doc_unit", "syllables")
	var cfgErr *InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "doc_unit", cfgErr.Field)
	assert.Equal(t, "syllables", cfgErr.Value)
}

func TestParseDocForm(t *testing.T) {
	f, err := ParseDocForm("sentences")
	require.NoError(t, err)
	assert.Equal(t, FormSentences, f)

	f, err = ParseDocForm("text")
	require.NoError(t, err)
	assert.Equal(t, FormText, f)

	_, err = ParseDocForm("paragraphs")
	assert.Error(t, err)
}

func TestParseDivision(t *testing.T) {
	d, err := ParseDivision("single_unit")
	require.NoError(t, err)
	assert.Equal(t, SingleUnit, d)

	d, err = ParseDivision("multiple_units")
	require.NoError(t, err)
	assert.Equal(t, MultipleUnits, d)

	_, err = ParseDivision("halves")
	assert.Error(t, err)
}

func TestUnitConfigFromStrings(t *testing.T) {
	cfg, err := UnitConfigFromStrings("chars", "raw_chars", "words", "sentences", "multiple_units")
	require.NoError(t, err)
	assert.Equal(t, UnitConfig{
		GeneUnit:      UnitChars,
		VariationUnit: UnitRawChars,
		DocUnit:       UnitWords,
		DocForm:       FormSentences,
		Divide:        MultipleUnits,
	}, cfg)
	assert.NoError(t, cfg.Validate())

	_, err = UnitConfigFromStrings("words", "words", "syllables", "text", "single_unit")
	var cfgErr *InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "doc_unit", cfgErr.Field)
}

func TestUnitConfigValidate(t *testing.T) {
	cfg := DefaultUnitConfig()
	require.NoError(t, cfg.Validate())

	cfg.VariationUnit = Unit(7)
	err := cfg.Validate()
	var cfgErr *InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "variation_unit", cfgErr.Field)
}
