package cmd

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"dominik/dom"
)

var summarizeNodeFunc = summarizeNode

var loadTargetFunc = LoadTarget

func mcpLoad(target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("load requires a file path or URL")
	}
	return withDoc(func() (string, error) {
		doc, err := loadTargetFunc(target)
		if err != nil {
			return "", fmt.Errorf("load failed: %w", err)
		}
		Doc = doc
		elementList = nil
		currentIndex = 0
		CurrentElement = nil
		if body, err := queryElements(Doc, "body"); err == nil && len(body) > 0 {
			CurrentElement = body[0]
		}
		return fmt.Sprintf("loaded %s", target), nil
	})
}

func mcpHTML() (string, error) {
	return withDoc(func() (string, error) {
		if CurrentElement == nil {
			return "", fmt.Errorf("no current element - call load_file/load_url first")
		}
		return Doc.Query(dom.Node(CurrentElement)).OuterHtml(), nil
	})
}

func mcpSearch(selector string) (string, error) {
	return withDoc(func() (string, error) {
		if Doc == nil {
			return "", fmt.Errorf("no document loaded - call load_file/load_url first")
		}
		elements, err := queryElements(Doc, selector)
		if err != nil {
			return "", fmt.Errorf("search failed: %w", err)
		}
		if len(elements) == 0 {
			elementList = nil
			CurrentElement = nil
			return fmt.Sprintf("no elements found for selector %s", selector), nil
		}

		elementList = elements
		currentIndex = 0
		CurrentElement = elementList[currentIndex]

		msg := formatElementListResponse(
			fmt.Sprintf("found %d elements for selector %q.", len(elementList), selector),
			elementList,
			currentIndex,
		)
		return msg, nil
	})
}

func mcpNext(indexOpt *int) (string, error) {
	if len(elementList) == 0 {
		return "", fmt.Errorf("no search results - run search first")
	}
	if indexOpt != nil {
		return selectElementAt(*indexOpt)
	}
	if currentIndex >= len(elementList)-1 {
		return "", fmt.Errorf("already at the last element (index %d)", currentIndex)
	}
	currentIndex++
	CurrentElement = elementList[currentIndex]
	return formatCurrentFocus(len(elementList)), nil
}

func mcpPrev(indexOpt *int) (string, error) {
	if len(elementList) == 0 {
		return "", fmt.Errorf("no search results - run search first")
	}
	if indexOpt != nil {
		return selectElementAt(*indexOpt)
	}
	if currentIndex == 0 {
		return "", fmt.Errorf("already at the first element (index 0)")
	}
	currentIndex--
	CurrentElement = elementList[currentIndex]
	return formatCurrentFocus(len(elementList)), nil
}

func mcpChild() (string, error) {
	if CurrentElement == nil {
		return "", fmt.Errorf("no current element - call load_file/search first")
	}
	child := firstElementChild(CurrentElement)
	if child == nil {
		return "", fmt.Errorf("current element has no element children")
	}
	CurrentElement = child
	return fmt.Sprintf("focused child element: %s", summarizeNodeFunc(CurrentElement)), nil
}

func mcpParent() (string, error) {
	if CurrentElement == nil {
		return "", fmt.Errorf("no current element - call load_file/search first")
	}
	parent := parentElement(CurrentElement)
	if parent == nil {
		return "", fmt.Errorf("current element has no parent element")
	}
	CurrentElement = parent
	return fmt.Sprintf("focused parent element: %s", summarizeNodeFunc(CurrentElement)), nil
}

func mcpAttr(descriptor string) (string, error) {
	if strings.TrimSpace(descriptor) == "" {
		return "", fmt.Errorf("attr requires an attribute name")
	}
	return withDoc(func() (string, error) {
		if CurrentElement == nil {
			return "", fmt.Errorf("no current element - call load_file/search first")
		}
		val := Doc.Query(dom.Node(CurrentElement)).Attr(descriptor)
		if val == nil {
			return fmt.Sprintf("attribute %q not set", descriptor), nil
		}
		return fmt.Sprintf("%v", val), nil
	})
}

func mcpSetAttr(name, value string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("set_attr requires an attribute name")
	}
	return withDoc(func() (string, error) {
		if CurrentElement == nil {
			return "", fmt.Errorf("no current element - call load_file/search first")
		}
		Doc.Query(dom.Node(CurrentElement)).SetAttr(name, value)
		return fmt.Sprintf("set %s=%q on current element", name, value), nil
	})
}

func mcpText() (string, error) {
	return withDoc(func() (string, error) {
		if CurrentElement == nil {
			return "", fmt.Errorf("no current element - call load_file/search first")
		}
		return strings.TrimSpace(Doc.Query(dom.Node(CurrentElement)).Text()), nil
	})
}

func mcpClick() (string, error) {
	return withDoc(func() (string, error) {
		if CurrentElement == nil {
			return "", fmt.Errorf("no current element - call load_file/search first")
		}
		count := Doc.Handlers(CurrentElement, "click")
		Doc.Dispatch(CurrentElement, "click")
		dispatchLog.Add(fmt.Sprintf("click -> %s (%d handlers)", summarizeNodeFunc(CurrentElement), count))
		return fmt.Sprintf("dispatched click, %d handlers ran", count), nil
	})
}

func formatCurrentFocus(total int) string {
	return fmt.Sprintf("focused index %d of %d: %s", currentIndex, total, summarizeNodeFunc(CurrentElement))
}

func selectElementAt(idx int) (string, error) {
	if idx < 0 || idx >= len(elementList) {
		return "", fmt.Errorf("index %d out of range (0-%d)", idx, len(elementList)-1)
	}
	currentIndex = idx
	CurrentElement = elementList[currentIndex]
	return formatCurrentFocus(len(elementList)), nil
}

func formatElementListResponse(header string, elements []*html.Node, focus int) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if len(elements) == 0 {
		b.WriteString("no elements available\n")
		return strings.TrimSuffix(b.String(), "\n")
	}
	if focus < 0 || focus >= len(elements) {
		focus = 0
	}
	fmt.Fprintf(&b, "focused index %d of %d: %s\n", focus, len(elements), summarizeNodeFunc(elements[focus]))
	for i, el := range elements {
		marker := " "
		if i == focus {
			marker = "*"
		}
		fmt.Fprintf(&b, "%d%s %s\n", i, marker, summarizeNodeFunc(el))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func summarizeNode(n *html.Node) string {
	if n == nil {
		return "(no element)"
	}

	var parts []string
	if n.Type == html.ElementNode && n.Data != "" {
		parts = append(parts, n.Data)
	}
	if id, ok := dom.GetAttr(n, "id"); ok && id != "" {
		parts = append(parts, "#"+id)
	}
	if class, ok := dom.GetAttr(n, "class"); ok && class != "" {
		className := strings.Join(strings.Fields(class), ".")
		if className != "" {
			parts = append(parts, "."+className)
		}
	}
	if Doc != nil {
		text := normalizeWhitespace(Doc.Query(dom.Node(n)).Text())
		if text != "" {
			if len(text) > 60 {
				text = text[:57] + "..."
			}
			parts = append(parts, fmt.Sprintf("text=%q", text))
		}
	}
	if len(parts) == 0 {
		return "(element)"
	}
	return strings.Join(parts, " ")
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
