package dom

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// AttrMap holds cast attribute values keyed by logical name. Absent
// attributes map to nil.
type AttrMap map[string]interface{}

// Prune deletes every nil-valued key and returns the map for chaining.
func (m AttrMap) Prune() AttrMap {
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
	return m
}

// Attr reads one attribute from the first element, cast per the
// descriptor's type suffix. It returns nil when the collection is empty
// or the attribute is absent.
//
// A descriptor is "name" or "name:type" with type one of string, bool,
// int and float. Numeric casts are best-effort: a value that fails to
// parse comes back as the raw string.
func (c *Collection) Attr(descriptor string) interface{} {
	n := c.First()
	if n == nil {
		return nil
	}
	name, typ := SplitDescriptor(descriptor)
	raw, ok := GetAttr(n, name)
	if !ok {
		return nil
	}
	return castAttr(raw, typ)
}

// SetAttr sets the attribute on every element. Values are written as
// given; no casting happens on write.
func (c *Collection) SetAttr(name, value string) *Collection {
	for _, n := range c.nodes {
		setAttr(n, name, value)
	}
	return c
}

// Attrs reads several descriptors from the first element into an AttrMap.
// With hyphenate set, camelCase logical names read the kebab-case
// physical attribute (myAttribute -> my-attribute). An empty collection
// yields nil for every requested name.
func (c *Collection) Attrs(descriptors []string, hyphenate bool) AttrMap {
	out := make(AttrMap, len(descriptors))
	n := c.First()
	for _, d := range descriptors {
		name, typ := SplitDescriptor(d)
		out[name] = nil
		if n == nil {
			continue
		}
		physical := name
		if hyphenate {
			physical = camelToKebab(name)
		}
		if raw, ok := GetAttr(n, physical); ok {
			out[name] = castAttr(raw, typ)
		}
	}
	return out
}

// SetAttrs writes each name/value pair on every element, converting
// logical names to kebab-case when hyphenate is set.
func (c *Collection) SetAttrs(values map[string]string, hyphenate bool) *Collection {
	for name, value := range values {
		physical := name
		if hyphenate {
			physical = camelToKebab(name)
		}
		c.SetAttr(physical, value)
	}
	return c
}

// SplitDescriptor splits a descriptor on the first colon; the type suffix is
// lower-cased and defaults to string.
func SplitDescriptor(d string) (name, typ string) {
	if i := strings.Index(d, ":"); i >= 0 {
		return d[:i], strings.ToLower(d[i+1:])
	}
	return d, "string"
}

func castAttr(raw, typ string) interface{} {
	switch typ {
	case "int":
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
		return raw
	case "float":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return raw
	case "bool":
		switch strings.ToLower(raw) {
		case "", "true", "1":
			return true
		}
		return false
	default:
		return raw
	}
}

func camelToKebab(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// GetAttr reads a raw attribute value straight off a node.
func GetAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}
