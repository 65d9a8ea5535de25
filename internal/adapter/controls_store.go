package adapter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	m "github.com/mouse-blink/docgap/internal/model"
)

// DefaultMaxMembers caps the members listed on a control reference page.
const DefaultMaxMembers = 16

// ControlsIndexName is the file name of the control reference index.
const ControlsIndexName = "README.md"

var (
	kebabLowerUpperRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	kebabAcronymRe    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// ControlsDocument is everything rendered into a control reference set.
type ControlsDocument struct {
	GeneratedAt time.Time
	Repository  string
	GitRef      string
	// TrimPrefix is the namespace prefix dropped from page slugs.
	TrimPrefix string
	MaxMembers int
	Controls   []m.ControlType
}

// ControlsStore persists control reference pages.
type ControlsStore interface {
	// Write renders one page per control and an index page into dir. It
	// returns the written paths, index last.
	Write(dir m.Path, doc ControlsDocument) ([]m.Path, error)
}

type controlsStore struct{}

// NewControlsStore constructs a ControlsStore backed by the local filesystem.
func NewControlsStore() ControlsStore {
	return &controlsStore{}
}

func (s *controlsStore) Write(dir m.Path, doc ControlsDocument) ([]m.Path, error) {
	slugs := ControlSlugs(doc.Controls, doc.TrimPrefix)
	written := make([]m.Path, 0, len(doc.Controls)+1)

	for i, control := range doc.Controls {
		path := m.Path(filepath.Join(string(dir), slugs[i]+".md"))
		if err := writeFile(path, []byte(RenderControlPage(control, doc.MaxMembers))); err != nil {
			return written, err
		}

		written = append(written, path)
	}

	index := m.Path(filepath.Join(string(dir), ControlsIndexName))
	if err := writeFile(index, []byte(RenderControlsIndex(doc, slugs))); err != nil {
		return written, err
	}

	return append(written, index), nil
}

// ControlSlugs returns the page slug of every control, in order. A slug
// already taken by an earlier control gets the kebab-cased assembly appended.
func ControlSlugs(controls []m.ControlType, trimPrefix string) []string {
	slugs := make([]string, len(controls))
	seen := make(map[string]bool, len(controls))

	for i, control := range controls {
		slug := SlugFor(control.FullName(), trimPrefix)
		if seen[slug] {
			slug += "-" + KebabCase(control.Assembly)
		}

		seen[slug] = true
		slugs[i] = slug
	}

	return slugs
}

// SlugFor kebab-cases each dotted part of fullName after dropping
// trimPrefix, and joins the parts with dashes.
func SlugFor(fullName, trimPrefix string) string {
	if trimPrefix != "" {
		fullName = strings.TrimPrefix(fullName, strings.TrimSuffix(trimPrefix, ".")+".")
	}

	var parts []string

	for _, part := range strings.Split(fullName, ".") {
		if part != "" {
			parts = append(parts, KebabCase(part))
		}
	}

	return strings.Join(parts, "-")
}

// KebabCase converts a PascalCase identifier to lower kebab case. Acronyms
// stay together: "HTMLPanel" becomes "html-panel".
func KebabCase(name string) string {
	name = kebabLowerUpperRe.ReplaceAllString(name, "${1}-${2}")
	name = kebabAcronymRe.ReplaceAllString(name, "${1}-${2}")

	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}

// RenderControlPage renders the reference page of one control.
func RenderControlPage(control m.ControlType, maxMembers int) string {
	if maxMembers <= 0 {
		maxMembers = DefaultMaxMembers
	}

	bases := "None"
	if len(control.Bases) > 0 {
		bases = strings.Join(control.Bases, ", ")
	}

	kind := "control"
	if control.Abstract {
		kind = "abstract control"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", control.Name)
	b.WriteString("> Note: This document is auto-generated by `docgap controls`. Do not edit manually.\n\n")
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Full type: `%s`\n", control.FullName())
	fmt.Fprintf(&b, "- Namespace: `%s`\n", control.Namespace)
	fmt.Fprintf(&b, "- Assembly: `%s`\n", control.Assembly)
	fmt.Fprintf(&b, "- Source: `%s`\n", control.Source)
	fmt.Fprintf(&b, "- Base types: `%s`\n", bases)
	fmt.Fprintf(&b, "- Kind: `%s`\n\n", kind)
	b.WriteString("## Basic APIs\n\n")

	members := uniqueMembers(control.Members, maxMembers)
	if len(members) == 0 {
		b.WriteString("- No additional public members are declared on this type in source files scanned; use base control APIs.\n")
	}

	for _, sig := range members {
		fmt.Fprintf(&b, "- `%s`\n", sig)
	}

	b.WriteString("\n## XAML Usage\n\n")
	b.WriteString(xamlUsage(control))
	b.WriteString("\n## C# Usage\n\n")
	b.WriteString(csharpUsage(control))

	return b.String()
}

// RenderControlsIndex renders the index page linking every control page,
// grouped by namespace. slugs is parallel to doc.Controls.
func RenderControlsIndex(doc ControlsDocument, slugs []string) string {
	type link struct {
		name, slug, fullName string
	}

	grouped := make(map[string][]link)

	for i, control := range doc.Controls {
		grouped[control.Namespace] = append(grouped[control.Namespace], link{control.Name, slugs[i], control.FullName()})
	}

	namespaces := make([]string, 0, len(grouped))
	for ns := range grouped {
		namespaces = append(namespaces, ns)
	}

	sort.Strings(namespaces)

	label := doc.Repository
	if doc.GitRef != "" {
		label += "@" + doc.GitRef
	}

	var b strings.Builder

	b.WriteString("# Controls Reference Index\n\n")
	fmt.Fprintf(&b, "- Generated at (UTC): `%s`\n", doc.GeneratedAt.UTC().Format(indexTimeLayout))
	fmt.Fprintf(&b, "- Repository: `%s`\n", label)

	if doc.GitRef != "" {
		fmt.Fprintf(&b, "- Git ref: `%s`\n", doc.GitRef)
	}

	fmt.Fprintf(&b, "- Controls documented: `%d`\n\n", len(doc.Controls))
	b.WriteString("Each control has a dedicated reference with basic APIs and XAML/C# usage.\n")

	for _, ns := range namespaces {
		links := grouped[ns]
		sort.SliceStable(links, func(i, j int) bool { return links[i].fullName < links[j].fullName })

		heading := ns
		if heading == "" {
			heading = "(global)"
		}

		fmt.Fprintf(&b, "\n## %s\n\n", heading)

		for _, l := range links {
			fmt.Fprintf(&b, "- [%s](%s.md) (`%s`)\n", l.name, l.slug, l.fullName)
		}
	}

	return b.String()
}

func uniqueMembers(signatures []string, limit int) []string {
	var out []string

	seen := make(map[string]bool, len(signatures))

	for _, sig := range signatures {
		sig = strings.Join(strings.Fields(sig), " ")
		if seen[sig] {
			continue
		}

		seen[sig] = true
		out = append(out, sig)

		if len(out) >= limit {
			break
		}
	}

	return out
}

func xamlUsage(control m.ControlType) string {
	if control.Abstract {
		return "```xml\n" +
			"<!-- Requires xmlns:local=\"using:MyApp.Controls\" -->\n" +
			fmt.Sprintf("<!-- %s is abstract; use a concrete derived type -->\n", control.Name) +
			fmt.Sprintf("<local:My%s x:Name=\"Sample%s\" />\n", control.Name, control.Name) +
			"```\n"
	}

	return fmt.Sprintf("```xml\n<%s x:Name=\"Sample%s\" />\n```\n", control.Name, control.Name)
}

func csharpUsage(control m.ControlType) string {
	var b strings.Builder

	b.WriteString("```csharp\n")

	if control.Namespace != "" {
		fmt.Fprintf(&b, "using %s;\n\n", control.Namespace)
	}

	if control.Abstract {
		fmt.Fprintf(&b, "public sealed class My%s : %s\n{\n}\n\n", control.Name, control.Name)
		fmt.Fprintf(&b, "var control = new My%s();\n", control.Name)
	} else {
		fmt.Fprintf(&b, "var control = new %s();\n", control.Name)
	}

	b.WriteString("```\n")

	return b.String()
}
