package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// variantPattern matches the struct types that make up an example's chain:
//   - type splitPhaseBefore struct
//   - type beforeRefactor struct
//   - type refactor3 struct
//   - type inAClassAfterRefactor struct
var variantPattern = regexp.MustCompile(`(?m)^type\s+\w*?((?:[Bb]efore(?:Refactor)?)|(?:[Aa]fterRefactor)|(?:[Rr]efactor(\d+)))\s+struct\b`)

// Parser reads example files to list the variants they define
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindVariants returns the variants declared in an example file in chain
// order: the "before" variant, the numbered refactors, then the "after".
func (p *Parser) FindVariants(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]int)
	for _, match := range variantPattern.FindAllStringSubmatch(string(content), -1) {
		name, rank := variantName(match[1], match[2])
		seen[name] = rank
	}

	variants := make([]string, 0, len(seen))
	for name := range seen {
		variants = append(variants, name)
	}
	sort.Slice(variants, func(i, j int) bool {
		return seen[variants[i]] < seen[variants[j]]
	})
	return variants, nil
}

func variantName(suffix, number string) (string, int) {
	if number != "" {
		n, _ := strconv.Atoi(number)
		return "Refactor" + number, n
	}
	switch suffix[0] {
	case 'B', 'b':
		return "BeforeRefactor", 0
	default:
		return "AfterRefactor", 1 << 20
	}
}
