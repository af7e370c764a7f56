// SPDX-License-Identifier: BSD-2-Clause

package catalog

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// mappingPair is one key/value entry of a YAML mapping, in document order.
// yaml.v3 map decoding loses declaration order, so order-sensitive sections
// are walked through the node tree instead.
type mappingPair struct {
	key   string
	value *yaml.Node
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

func expectMapping(node *yaml.Node, section string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: not a mapping", section)
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func mappingPairs(node *yaml.Node) []mappingPair {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([]mappingPair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, mappingPair{
			key:   node.Content[i].Value,
			value: node.Content[i+1],
		})
	}
	return pairs
}

func sortStrings(s []string) { sort.Strings(s) }
