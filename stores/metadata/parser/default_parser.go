package parser

import (
	"sort"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/asset"
)

type defaultParser struct {
	parsers []AttributeParser
}

// NewDefaultParser tries each known layout in turn and returns the first match
func NewDefaultParser() AttributeParser {
	return &defaultParser{
		parsers: []AttributeParser{
			NewAttributesParser(),
			// a properties array must be tried before the plain properties map
			NewPropertyDetailParser(),
			NewPropertiesParser(),
		},
	}
}

func (p *defaultParser) Name() string {
	return "Default Parser"
}

func (p *defaultParser) Parse(ctx bCtx.Ctx, data []byte) (asset.Attributes, error) {
	var (
		attrs asset.Attributes
		err   error
	)
	for _, parser := range p.parsers {
		attrs, err = parser.Parse(ctx, data)
		if err == nil {
			return attrs, nil
		}
	}
	return nil, err
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
