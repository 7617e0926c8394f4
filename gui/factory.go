package gui

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/dfpsr-go/softcanvas/internal/diag"
)

// classFactory creates a fresh, default-configured instance of a
// registered component class by name, for deserializing a saved layout
// without the caller needing a big type switch of its own.
type classFactory func() Component

var classRegistry = map[string]classFactory{
	"Panel":    func() Component { return NewPanel() },
	"Label":    func() Component { return NewLabel("") },
	"Button":   func() Component { return NewButton("") },
	"Picture":  func() Component { return NewPicture(zeroImage()) },
	"Toolbar":  func() Component { return NewToolbar() },
	"Menu":     func() Component { return NewMenu("", nil) },
	"ListBox":  func() Component { return NewListBox() },
	"TextBox":  func() Component { return NewTextBox() },
}

// RegisterClass adds or overrides a component class available to
// SaveLayout/LoadLayout, so an application can extend the built-in set
// without modifying this package.
func RegisterClass(name string, make classFactory) {
	classRegistry[name] = make
}

// SaveLayout serializes the tree rooted at c as indented
// "ClassName name=\"...\" visible=true" lines, one per component, children
// indented one level deeper than their parent. Region is not persisted;
// callers that need to restore exact placement should set it explicitly
// after LoadLayout by application code that knows the intended layout,
// since FlexRegion ratios are a presentation-time decision, not saved
// state.
func SaveLayout(c Component) string {
	var sb strings.Builder
	saveNode(&sb, c, 0)
	return sb.String()
}

func saveNode(sb *strings.Builder, c Component, depth int) {
	n := c.Base()
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%s name=%q visible=%v\n", n.class, n.name, n.visible)
	for _, child := range n.children {
		saveNode(sb, child, depth+1)
	}
}

// LoadLayout parses text produced by SaveLayout and reconstructs the
// component tree. A class name not found in classRegistry becomes a
// stub placeholder component instead of failing the whole parse, matching
// the reference engine's documented class (and its unknown-class
// placeholder) for layout persistence.
func LoadLayout(text string) (Component, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var stack []Component
	var depths []int
	var root Component

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := indentDepth(line)
		class, attrs, err := parseLine(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		c := instantiate(class)
		n := c.Base()
		n.name = attrs["name"]
		n.visible = attrs["visible"] != "false"

		for len(stack) > 0 && depths[len(depths)-1] >= depth {
			stack = stack[:len(stack)-1]
			depths = depths[:len(depths)-1]
		}
		if len(stack) == 0 {
			root = c
		} else {
			stack[len(stack)-1].Base().AddChild(c)
		}
		stack = append(stack, c)
		depths = append(depths, depth)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("layout text contained no components")
	}
	return root, nil
}

func instantiate(class string) Component {
	if make, ok := classRegistry[class]; ok {
		return make()
	}
	diag.Warn("unknown component class %q in saved layout, using placeholder", class)
	return newStub(class)
}

func indentDepth(line string) int {
	depth := 0
	for _, r := range line {
		if r == ' ' {
			depth++
		} else {
			break
		}
	}
	return depth / 2
}

func parseLine(line string) (class string, attrs map[string]string, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty layout line")
	}
	class = fields[0]
	attrs = map[string]string{}
	for _, f := range fields[1:] {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, val := parts[0], parts[1]
		if unquoted, err := strconv.Unquote(val); err == nil {
			val = unquoted
		}
		attrs[key] = val
	}
	return class, attrs, nil
}
