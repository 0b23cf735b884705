package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hanpama/gqlcompose/internal/language"
)

// Load reads SDL from a .graphql file, or from every .graphql file in a
// directory, and compiles it into a Set. Directory entries are merged in
// name order so the result does not depend on filesystem quirks.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	var sources []*language.Source
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".graphql" {
				continue
			}
			name := filepath.Join(path, e.Name())
			content, err := os.ReadFile(name)
			if err != nil {
				return nil, fmt.Errorf("catalog: %w", err)
			}
			sources = append(sources, &language.Source{Name: name, Input: string(content)})
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("catalog: no .graphql files under %s", path)
		}
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		sources = append(sources, &language.Source{Name: path, Input: string(content)})
	}
	doc, err := language.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}
