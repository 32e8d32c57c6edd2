package oracle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// verifyMarker delimits the index list in a relevance verification reply.
const verifyMarker = "Relevant Document Indices:"

// parseIntent interprets an intent gate reply. A reply starting with
// FALSE carries a ready conversational response after the keyword; any
// other reply means the turn is substantive.
func parseIntent(reply string) driven.IntentDecision {
	reply = strings.TrimSpace(reply)
	if len(reply) >= 5 && strings.EqualFold(reply[:5], "false") {
		return driven.IntentDecision{
			Casual: true,
			Reply:  strings.TrimSpace(reply[5:]),
		}
	}
	return driven.IntentDecision{}
}

// parseLanguage interprets a language detection reply. A reply starting
// with ARABIC carries the English translation after the keyword; the
// original query is kept when the translation is empty or the reply
// signals the working language. The tag and translation may be separated
// by any whitespace, including a newline.
func parseLanguage(reply, query string) driven.LanguageDecision {
	reply = strings.TrimSpace(reply)
	if len(reply) >= 3 && strings.EqualFold(reply[:3], "ara") {
		translation := ""
		if idx := strings.IndexFunc(reply, unicode.IsSpace); idx >= 0 {
			translation = strings.TrimSpace(reply[idx:])
		}
		if translation == "" {
			translation = query
		}
		return driven.LanguageDecision{Language: domain.LanguageArabic, Query: translation}
	}
	return driven.LanguageDecision{Language: domain.LanguageEnglish, Query: query}
}

// parseCodes interprets a code routing reply: whitespace-separated code
// identifiers filtered against the catalogue. The "answer" sentinel (or
// a reply with no recognised code) yields an empty result, meaning the
// full corpus.
func parseCodes(reply string, catalogue domain.CodeCatalogue) []string {
	if strings.Contains(strings.ToLower(reply), "answer") {
		return nil
	}

	var codes []string
	for _, token := range strings.Fields(reply) {
		token = strings.Trim(token, ".,;:")
		if catalogue.Contains(token) {
			codes = append(codes, token)
		}
	}
	return codes
}

// parseIndices extracts 1-based document indices from a verification
// reply. A reply without the marker violates the wire contract and
// surfaces as domain.ErrUnparsableOracleReply; a marker with no numeric
// token is a valid empty selection.
func parseIndices(reply string) ([]int, error) {
	_, after, ok := strings.Cut(reply, verifyMarker)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q marker", domain.ErrUnparsableOracleReply, verifyMarker)
	}

	section := strings.Trim(strings.TrimSpace(after), "[]")
	var indices []int
	for _, token := range strings.Split(section, ",") {
		token = strings.TrimSpace(token)
		if idx, err := strconv.Atoi(token); err == nil && idx >= 0 {
			indices = append(indices, idx)
		}
	}
	return indices, nil
}

// parseScores extracts one relevance score per document from a scoring
// reply. A count mismatch violates the wire contract.
func parseScores(reply string, want int) ([]float64, error) {
	cleaned := strings.NewReplacer("\n", ",", "[", "", "]", "").Replace(reply)

	var scores []float64
	for _, token := range strings.Split(cleaned, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		score, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric score %q", domain.ErrUnparsableOracleReply, token)
		}
		scores = append(scores, score)
	}

	if len(scores) != want {
		return nil, fmt.Errorf("%w: got %d scores for %d documents",
			domain.ErrUnparsableOracleReply, len(scores), want)
	}
	return scores, nil
}

// formatDocuments renders documents as a numbered block for prompts.
func formatDocuments(documents []string) string {
	var b strings.Builder
	for i, doc := range documents {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Document %d:\n%s", i+1, doc)
	}
	return b.String()
}
