package parser

import (
	"encoding/json"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
)

// AttributeParser extracts display traits from a raw metadata document
type AttributeParser interface {
	Name() string
	Parse(c ctx.Ctx, data []byte) (asset.Attributes, error)
}

type rawAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type propertyDetail struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// stringify keeps strings verbatim and renders anything else as json
func stringify(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", domain.ErrInvalidJsonFormat
	}
	return string(b), nil
}

type attributesParser struct{}

func NewAttributesParser() AttributeParser {
	return &attributesParser{}
}

func (p *attributesParser) Name() string {
	return "Attributes Parser"
}

func (p *attributesParser) Parse(_ ctx.Ctx, data []byte) (asset.Attributes, error) {
	type metadata struct {
		Attributes []rawAttribute `json:"attributes"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Attributes) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := asset.Attributes{}
	for _, v := range meta.Attributes {
		str, err := stringify(v.Value)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, asset.Attribute{TraitType: v.TraitType, Value: str})
	}
	return attrs, nil
}

type propertyDetailParser struct{}

func NewPropertyDetailParser() AttributeParser {
	return &propertyDetailParser{}
}

func (p *propertyDetailParser) Name() string {
	return "PropertyDetail Parser"
}

func (p *propertyDetailParser) Parse(_ ctx.Ctx, data []byte) (asset.Attributes, error) {
	type metadata struct {
		Properties []propertyDetail `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := asset.Attributes{}
	for _, v := range meta.Properties {
		str, err := stringify(v.Value)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, asset.Attribute{TraitType: v.Name, Value: str})
	}
	return attrs, nil
}

type propertiesParser struct{}

func NewPropertiesParser() AttributeParser {
	return &propertiesParser{}
}

func (p *propertiesParser) Name() string {
	return "Properties Parser"
}

func (p *propertiesParser) Parse(_ ctx.Ctx, data []byte) (asset.Attributes, error) {
	type metadata struct {
		Properties map[string]interface{} `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := asset.Attributes{}
	for _, k := range sortedKeys(meta.Properties) {
		str, err := stringify(meta.Properties[k])
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, asset.Attribute{TraitType: k, Value: str})
	}
	return attrs, nil
}
