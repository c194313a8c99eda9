package dummy

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRootTag wraps a whole document.
const DefaultRootTag = "data"

// ToXML serializes a generated document inside <root>...</root>.
//
// Members of a node are written in insertion order. A sequence member is
// written once per element, each element using the member's key as its tag.
// A nested node uses its key as its tag. Leaves become <key>value</key> with
// the value's plain text form. When v itself is a sequence its indices are
// used as keys, so a replicated document yields <data><0>...</0>...</data>.
//
// Values and tag names are not escaped. Generated leaves are alphanumeric,
// UUIDs or user<n>@example.com, none of which need escaping; this is not a
// general purpose XML encoder.
func ToXML(v any, root string) string {
	var b strings.Builder
	writeElement(&b, v, root)
	return b.String()
}

func writeElement(b *strings.Builder, v any, tag string) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")

	switch t := v.(type) {
	case *Node:
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			writeMember(b, pair.Key, pair.Value)
		}
	case []any:
		for i, item := range t {
			writeMember(b, strconv.Itoa(i), item)
		}
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func writeMember(b *strings.Builder, key string, value any) {
	switch t := value.(type) {
	case []any:
		for _, item := range t {
			writeElement(b, item, key)
		}
	case *Node:
		writeElement(b, t, key)
	default:
		b.WriteString("<")
		b.WriteString(key)
		b.WriteString(">")
		b.WriteString(fmt.Sprint(t))
		b.WriteString("</")
		b.WriteString(key)
		b.WriteString(">")
	}
}
