package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/dolthub/recordcodec/kind"
)

// yamlSchemaFile is the on-disk shape of a schema definition: a flat list
// of properties, each naming its global id, field name, and declared wire
// type. This is the format the core's embedding environment is expected to
// author by hand or generate from a higher-level schema migration tool;
// the core itself never discovers or writes one.
type yamlSchemaFile struct {
	Properties []yamlProperty `yaml:"properties"`
}

type yamlProperty struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

var typeNames = map[string]kind.Kind{
	"boolean":  kind.Boolean,
	"int":      kind.Int,
	"short":    kind.Short,
	"long":     kind.Long,
	"float":    kind.Float,
	"double":   kind.Double,
	"datetime": kind.DateTime,
	"string":   kind.String,
	"binary":   kind.Binary,
	"embedded": kind.EmbeddedDocument,
	"list":     kind.EmbeddedList,
	"set":      kind.EmbeddedSet,
	"map":      kind.EmbeddedMap,
	"link":     kind.Link,
	"linklist": kind.LinkList,
	"linkset":  kind.LinkSet,
	"linkmap":  kind.LinkMap,
	"linkbag":  kind.LinkBag,
	"decimal":  kind.Decimal,
	"date":     kind.Date,
	"any":      kind.Any,
}

// LoadYAML reads a property-id schema definition from path. It is a thin
// convenience for command-line tooling and tests; library callers that
// already hold a Schema in memory have no reason to round-trip it through
// YAML.
func LoadYAML(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

// ParseYAML parses the YAML schema document in data.
func ParseYAML(data []byte) (Map, error) {
	var file yamlSchemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("schema: parsing yaml: %w", err)
	}

	m := make(Map, len(file.Properties))
	for _, p := range file.Properties {
		typ, ok := typeNames[p.Type]
		if !ok {
			return nil, fmt.Errorf("schema: property %q (id %d): unrecognized type %q", p.Name, p.ID, p.Type)
		}
		if _, exists := m[p.ID]; exists {
			return nil, fmt.Errorf("schema: duplicate property id %d", p.ID)
		}
		m[p.ID] = Property{Name: p.Name, Type: typ}
	}
	return m, nil
}
