// Package lexicon provides a fixed synonym ontology used to expand
// queries before lexical scoring. Expansion never applies to vector
// scoring.
package lexicon

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
	"github.com/mizan-labs/mizan-cli/internal/index/bm25"
)

// Ensure Lexicon implements the interface.
var _ driven.Lexicon = (*Lexicon)(nil)

// Lexicon maps terms to their synonyms.
type Lexicon struct {
	synonyms map[string][]string
}

// lexiconFile is the on-disk TOML shape:
//
//	[synonyms]
//	divorce = ["dissolution", "separation"]
type lexiconFile struct {
	Synonyms map[string][]string `toml:"synonyms"`
}

// New creates a lexicon from a synonym map. Keys are lowercased.
func New(synonyms map[string][]string) *Lexicon {
	normalised := make(map[string][]string, len(synonyms))
	for term, syns := range synonyms {
		normalised[strings.ToLower(term)] = syns
	}
	return &Lexicon{synonyms: normalised}
}

// LoadFile reads a TOML synonym file from disk.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file lexiconFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return New(file.Synonyms), nil
}

// Expand appends every synonym of every query token to the query.
// Synonyms equal to the token itself are skipped, and each synonym is
// added at most once.
func (l *Lexicon) Expand(query string) string {
	seen := make(map[string]bool)
	var added []string

	for _, token := range bm25.Tokenize(query) {
		for _, syn := range l.synonyms[token] {
			key := strings.ToLower(syn)
			if key == token || seen[key] {
				continue
			}
			seen[key] = true
			added = append(added, syn)
		}
	}

	if len(added) == 0 {
		return query
	}
	return query + " " + strings.Join(added, " ")
}

// Default returns the built-in legal-domain lexicon.
func Default() *Lexicon {
	return New(map[string][]string{
		"divorce":      {"dissolution", "separation", "repudiation"},
		"marriage":     {"matrimony", "wedlock", "union"},
		"custody":      {"guardianship", "care"},
		"inheritance":  {"succession", "estate", "heir"},
		"alimony":      {"maintenance", "support"},
		"contract":     {"agreement", "obligation", "covenant"},
		"lease":        {"rental", "tenancy"},
		"property":     {"ownership", "estate", "asset"},
		"mortgage":     {"hypothec", "lien"},
		"crime":        {"offence", "offense", "felony", "misdemeanour"},
		"theft":        {"larceny", "stealing", "robbery"},
		"murder":       {"homicide", "manslaughter"},
		"penalty":      {"sanction", "punishment", "fine"},
		"prison":       {"imprisonment", "detention", "incarceration"},
		"court":        {"tribunal", "judiciary"},
		"judge":        {"magistrate"},
		"lawyer":       {"attorney", "counsel", "advocate"},
		"lawsuit":      {"litigation", "proceedings", "action"},
		"appeal":       {"review", "recourse"},
		"evidence":     {"proof", "testimony"},
		"witness":      {"testimony", "deposition"},
		"employment":   {"labor", "labour", "work", "job"},
		"employee":     {"worker", "labourer"},
		"employer":     {"company", "enterprise"},
		"salary":       {"wage", "pay", "remuneration"},
		"dismissal":    {"termination", "firing", "layoff"},
		"tax":          {"taxation", "levy", "duty"},
		"customs":      {"duty", "tariff", "import"},
		"company":      {"corporation", "firm", "enterprise", "society"},
		"bankruptcy":   {"insolvency", "liquidation"},
		"insurance":    {"coverage", "indemnity", "policy"},
		"nationality":  {"citizenship", "naturalisation"},
		"child":        {"minor", "juvenile"},
		"adoption":     {"kafala", "fostering"},
		"driving":      {"traffic", "road", "vehicle"},
		"accident":     {"collision", "injury"},
		"investment":   {"capital", "funding"},
		"arbitration":  {"mediation", "settlement"},
		"fishing":      {"fisheries", "maritime"},
		"mining":       {"extraction", "minerals"},
		"water":        {"hydraulic", "irrigation"},
		"press":        {"media", "publication", "journalism"},
		"rights":       {"liberties", "freedoms", "entitlements"},
		"constitution": {"fundamental", "charter"},
	})
}
