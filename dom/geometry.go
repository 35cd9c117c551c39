package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Geometry works off the in-memory box model: inline style first
// (width, height, padding-*, border-*-width, top, left), then the
// width/height presentation attributes. There is no layout engine here;
// anything unspecified measures zero.

// Point is a top/left pixel pair.
type Point struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Width returns the first element's content width in pixels, 0 when the
// collection is empty or nothing declares one.
func (c *Collection) Width() float64 {
	return c.measure("width")
}

// Height is Width for the vertical axis.
func (c *Collection) Height() float64 {
	return c.measure("height")
}

func (c *Collection) measure(dim string) float64 {
	n := c.First()
	if n == nil {
		return 0
	}
	if v, ok := styleValue(n, dim); ok {
		return v
	}
	if raw, ok := GetAttr(n, dim); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return v
		}
	}
	return 0
}

// SetWidth sets the width style on every element. A bare number gets a
// px suffix; a value already carrying a unit passes through unchanged.
func (c *Collection) SetWidth(value string) *Collection {
	return c.setDimension("width", value)
}

// SetHeight is SetWidth for the vertical axis.
func (c *Collection) SetHeight(value string) *Collection {
	return c.setDimension("height", value)
}

func (c *Collection) setDimension(dim, value string) *Collection {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		value = strings.TrimSpace(value) + "px"
	}
	for _, n := range c.nodes {
		setStyleProp(n, dim, value)
	}
	return c
}

// OuterWidth is content width plus horizontal padding and border.
func (c *Collection) OuterWidth() float64 {
	n := c.First()
	if n == nil {
		return 0
	}
	return c.Width() + edge(n, "padding", "left") + edge(n, "padding", "right") +
		borderEdge(n, "left") + borderEdge(n, "right")
}

// OuterHeight is content height plus vertical padding and border.
func (c *Collection) OuterHeight() float64 {
	n := c.First()
	if n == nil {
		return 0
	}
	return c.Height() + edge(n, "padding", "top") + edge(n, "padding", "bottom") +
		borderEdge(n, "top") + borderEdge(n, "bottom")
}

// Offset returns the first element's top/left accumulated over its
// ancestor chain, {0,0} when the collection is empty.
func (c *Collection) Offset() Point {
	n := c.First()
	if n == nil {
		return Point{}
	}
	var p Point
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		top, _ := styleValue(cur, "top")
		left, _ := styleValue(cur, "left")
		p.Top += top
		p.Left += left
	}
	return p
}

// Position returns the first element's own declared top/left.
func (c *Collection) Position() Point {
	n := c.First()
	if n == nil {
		return Point{}
	}
	top, _ := styleValue(n, "top")
	left, _ := styleValue(n, "left")
	return Point{Top: top, Left: left}
}

// edge reads e.g. padding-left, falling back to the single-value
// shorthand.
func edge(n *html.Node, prop, side string) float64 {
	if v, ok := styleValue(n, prop+"-"+side); ok {
		return v
	}
	if v, ok := styleValue(n, prop); ok {
		return v
	}
	return 0
}

func borderEdge(n *html.Node, side string) float64 {
	if v, ok := styleValue(n, "border-"+side+"-width"); ok {
		return v
	}
	if v, ok := styleValue(n, "border-width"); ok {
		return v
	}
	return 0
}

// styleValue reads one inline style property as a pixel amount.
func styleValue(n *html.Node, prop string) (float64, bool) {
	raw, ok := styleProp(n, prop)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func styleProp(n *html.Node, prop string) (string, bool) {
	style, ok := GetAttr(n, "style")
	if !ok {
		return "", false
	}
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == prop {
			return strings.TrimSpace(parts[1]), true
		}
	}
	return "", false
}

func setStyleProp(n *html.Node, prop, value string) {
	style, _ := GetAttr(n, "style")
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == prop {
			continue
		}
		kept = append(kept, strings.TrimSpace(decl))
	}
	kept = append(kept, prop+": "+value)
	setAttr(n, "style", strings.Join(kept, "; "))
}
