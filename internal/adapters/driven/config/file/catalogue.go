package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// catalogueFile is the on-disk TOML shape:
//
//	[[codes]]
//	id = "code-travail"
//	description = "Governs labor laws."
type catalogueFile struct {
	Codes []struct {
		ID          string `toml:"id"`
		Description string `toml:"description"`
	} `toml:"codes"`
}

// LoadCatalogue reads a code catalogue from a TOML file. Every entry
// must carry an id; descriptions ground the routing and rewrite oracles
// and should not be left empty.
func LoadCatalogue(path string) (domain.CodeCatalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f catalogueFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	if len(f.Codes) == 0 {
		return nil, fmt.Errorf("catalogue %s defines no codes", path)
	}

	catalogue := make(domain.CodeCatalogue, len(f.Codes))
	for i, c := range f.Codes {
		if c.ID == "" {
			return nil, fmt.Errorf("catalogue %s: entry %d has no id", path, i)
		}
		catalogue[i] = domain.CodeEntry{ID: c.ID, Description: c.Description}
	}
	return catalogue, nil
}
