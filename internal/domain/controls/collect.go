// Package controls finds the control types among scanned declarations and
// gathers what a reference page needs to know about each of them.
//
// A control is any class or record whose base type chain, followed by short
// name through the scanned types, reaches one of the root types.
package controls

import (
	"slices"
	"sort"
	"strings"

	"github.com/mouse-blink/docgap/internal/domain/scanner"
	m "github.com/mouse-blink/docgap/internal/model"
)

// DefaultRoots are the base types every control derives from.
var DefaultRoots = []string{"Control", "TopLevel", "WindowBase"}

// Collect gathers every public class and record type declared in units,
// keyed by full name. Partial declarations are merged: the first one seen
// provides the source and declaration, bases are united and members are
// appended in unit order.
//
// Members are attributed to the most recent class or record declaration in
// the same unit. Any other type declaration ends the attribution.
func Collect(units []m.UnitSignatures) map[string]*m.ControlType {
	types := make(map[string]*m.ControlType)

	for _, unit := range units {
		var current *m.ControlType

		for _, sig := range unit.Signatures {
			kind, name, ok := scanner.DeclaredType(sig)
			if !ok {
				if current != nil {
					current.Members = append(current.Members, sig)
				}

				continue
			}

			if kind != "class" && kind != "record" {
				current = nil

				continue
			}

			short, _, _ := strings.Cut(name, "`")
			candidate := m.ControlType{Name: short, Namespace: unit.Namespace}

			info, seen := types[candidate.FullName()]
			if !seen {
				info = &m.ControlType{
					Name:        short,
					Namespace:   unit.Namespace,
					Source:      unit.Unit,
					Assembly:    AssemblyFor(unit.Unit, unit.Namespace),
					Declaration: sig,
				}
				types[candidate.FullName()] = info
			}

			info.Abstract = info.Abstract || strings.Contains(" "+sig+" ", " abstract ")
			info.Bases = mergeNames(info.Bases, BaseNames(sig))
			current = info
		}
	}

	return types
}

// Select returns the types that reach one of roots through their base
// names, sorted by full name. The roots themselves are included when they
// were scanned.
func Select(types map[string]*m.ControlType, roots []string) []m.ControlType {
	controlNames := make(map[string]bool, len(roots))
	for _, root := range roots {
		controlNames[root] = true
	}

	for changed := true; changed; {
		changed = false

		for _, info := range types {
			if controlNames[info.Name] {
				continue
			}

			for _, base := range info.Bases {
				if controlNames[base] {
					controlNames[info.Name] = true
					changed = true

					break
				}
			}
		}
	}

	var selected []m.ControlType

	for _, info := range types {
		if controlNames[info.Name] {
			selected = append(selected, *info)
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].FullName() < selected[j].FullName() })

	return selected
}

// BaseNames returns the short names of the base types listed in a type
// declaration. Namespace qualifiers, type arguments, nullable markers and
// primary constructor arguments are dropped.
func BaseNames(signature string) []string {
	decl, _, _ := strings.Cut(signature, "{")
	decl, _, _ = strings.Cut(decl, " where ")
	decl = strings.ReplaceAll(decl, "global::", "")

	_, list, ok := strings.Cut(decl, ":")
	if !ok {
		return nil
	}

	var names []string

	for _, part := range splitTopLevel(list) {
		token := strings.TrimSpace(strings.ReplaceAll(part, "?", ""))
		token, _, _ = strings.Cut(token, "<")
		token, _, _ = strings.Cut(token, "(")
		token = strings.TrimRight(token, "; ")

		if i := strings.LastIndexByte(token, '.'); i >= 0 {
			token = token[i+1:]
		}

		if token = strings.TrimSpace(token); token != "" {
			names = append(names, token)
		}
	}

	return names
}

// AssemblyFor derives the assembly from a "src/<Assembly>/..." unit path.
// Other paths fall back to the namespace.
func AssemblyFor(unit, namespace string) string {
	parts := strings.Split(unit, "/")
	if len(parts) >= 3 && parts[0] == "src" {
		return parts[1]
	}

	return namespace
}

// splitTopLevel splits a base list on commas outside angle brackets and
// parentheses.
func splitTopLevel(list string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range list {
		switch r {
		case '<', '(':
			depth++
		case '>', ')':
			depth = max(depth-1, 0)
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, list[start:])
}

func mergeNames(names, more []string) []string {
	for _, name := range more {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}
