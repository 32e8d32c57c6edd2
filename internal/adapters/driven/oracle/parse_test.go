package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

func TestParseIntent_FalseCarriesReply(t *testing.T) {
	decision := parseIntent("FALSE Hello! How can I help you with Tunisian law today?")

	assert.True(t, decision.Casual)
	assert.Equal(t, "Hello! How can I help you with Tunisian law today?", decision.Reply)
}

func TestParseIntent_CaseInsensitive(t *testing.T) {
	decision := parseIntent("false thanks, goodbye!")

	assert.True(t, decision.Casual)
	assert.Equal(t, "thanks, goodbye!", decision.Reply)
}

func TestParseIntent_SubstantiveTurn(t *testing.T) {
	decision := parseIntent("TRUE")

	assert.False(t, decision.Casual)
	assert.Empty(t, decision.Reply)
}

func TestParseIntent_ShortReply(t *testing.T) {
	assert.False(t, parseIntent("ok").Casual)
}

func TestParseLanguage_ArabicCarriesTranslation(t *testing.T) {
	decision := parseLanguage("ARABIC  What are the divorce procedures?", "ما هي إجراءات الطلاق؟")

	assert.Equal(t, domain.LanguageArabic, decision.Language)
	assert.Equal(t, "What are the divorce procedures?", decision.Query)
}

func TestParseLanguage_ArabicNewlineSeparatedTranslation(t *testing.T) {
	decision := parseLanguage("ARABIC\nWhat are the divorce procedures?", "ما هي إجراءات الطلاق؟")

	assert.Equal(t, domain.LanguageArabic, decision.Language)
	assert.Equal(t, "What are the divorce procedures?", decision.Query)
}

func TestParseLanguage_ArabicWithoutTranslationKeepsQuery(t *testing.T) {
	decision := parseLanguage("ARABIC", "ما هي إجراءات الطلاق؟")

	assert.Equal(t, domain.LanguageArabic, decision.Language)
	assert.Equal(t, "ما هي إجراءات الطلاق؟", decision.Query)
}

func TestParseLanguage_EnglishKeepsQuery(t *testing.T) {
	decision := parseLanguage("ENGLISH", "What is theft?")

	assert.Equal(t, domain.LanguageEnglish, decision.Language)
	assert.Equal(t, "What is theft?", decision.Query)
}

func TestParseCodes_AnswerSentinelMeansFullCorpus(t *testing.T) {
	assert.Nil(t, parseCodes("answer", domain.DefaultCatalogue()))
	assert.Nil(t, parseCodes("I can Answer this directly.", domain.DefaultCatalogue()))
}

func TestParseCodes_FiltersAgainstCatalogue(t *testing.T) {
	codes := parseCodes("code-travail, code-penal, code-imaginaire", domain.DefaultCatalogue())

	assert.Equal(t, []string{"code-travail", "code-penal"}, codes)
}

func TestParseCodes_NoRecognisedCode(t *testing.T) {
	assert.Nil(t, parseCodes("something unrelated", domain.DefaultCatalogue()))
}

func TestParseIndices(t *testing.T) {
	indices, err := parseIndices("Reasoning here.\nRelevant Document Indices:\n[1, 3, 5]")

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, indices)
}

func TestParseIndices_MarkerMissing(t *testing.T) {
	_, err := parseIndices("No documents seem relevant.")

	assert.ErrorIs(t, err, domain.ErrUnparsableOracleReply)
}

func TestParseIndices_EmptySelection(t *testing.T) {
	indices, err := parseIndices("Relevant Document Indices:\n[]")

	require.NoError(t, err)
	assert.Empty(t, indices)
}

func TestParseScores(t *testing.T) {
	scores, err := parseScores("[0.9, 0.2, 0.75]", 3)

	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.2, 0.75}, scores)
}

func TestParseScores_NewlineSeparated(t *testing.T) {
	scores, err := parseScores("0.9\n0.2", 2)

	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.2}, scores)
}

func TestParseScores_CountMismatch(t *testing.T) {
	_, err := parseScores("[0.9, 0.2]", 3)

	assert.ErrorIs(t, err, domain.ErrUnparsableOracleReply)
}

func TestParseScores_NonNumeric(t *testing.T) {
	_, err := parseScores("[high, low]", 2)

	assert.ErrorIs(t, err, domain.ErrUnparsableOracleReply)
}

func TestFormatDocuments(t *testing.T) {
	block := formatDocuments([]string{"First article.", "Second article."})

	assert.Equal(t, "Document 1:\nFirst article.\n\nDocument 2:\nSecond article.", block)
}
