package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docgap/internal/model"
)

func sampleControls() ControlsDocument {
	return ControlsDocument{
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Repository:  "Avalonia",
		GitRef:      "11.3.12",
		TrimPrefix:  "Avalonia.Controls",
		Controls: []m.ControlType{
			{
				Name:        "Button",
				Namespace:   "Avalonia.Controls",
				Source:      "src/Avalonia.Controls/Button.cs",
				Assembly:    "Avalonia.Controls",
				Declaration: "public class Button : ContentControl",
				Bases:       []string{"ContentControl", "ICommandSource"},
				Members:     []string{"public ICommand? Command { get; set; }", "public  ICommand?   Command { get; set; }", "public event EventHandler? Click"},
			},
			{
				Name:      "TemplatedControl",
				Namespace: "Avalonia.Controls.Primitives",
				Source:    "src/Avalonia.Controls/Primitives/TemplatedControl.cs",
				Assembly:  "Avalonia.Controls",
				Abstract:  true,
				Bases:     []string{"Control"},
			},
			{
				Name:      "Button",
				Namespace: "Avalonia.Controls",
				Source:    "src/Avalonia.Controls.Extra/Button.cs",
				Assembly:  "Avalonia.Controls.Extra",
			},
		},
	}
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"Button":          "button",
		"ToggleButton":    "toggle-button",
		"HTMLPanel":       "html-panel",
		"Grid2D":          "grid2-d",
		"Items_Presenter": "items-presenter",
	}

	for in, want := range tests {
		assert.Equal(t, want, KebabCase(in), in)
	}
}

func TestSlugFor(t *testing.T) {
	assert.Equal(t, "toggle-button", SlugFor("Avalonia.Controls.ToggleButton", "Avalonia.Controls"))
	assert.Equal(t, "primitives-templated-control", SlugFor("Avalonia.Controls.Primitives.TemplatedControl", "Avalonia.Controls."))
	assert.Equal(t, "demo-widget", SlugFor("Demo.Widget", "Avalonia.Controls"))
	assert.Equal(t, "avalonia-controls-button", SlugFor("Avalonia.Controls.Button", ""))
}

func TestControlSlugs_DisambiguatesByAssembly(t *testing.T) {
	doc := sampleControls()

	assert.Equal(t, []string{
		"button",
		"primitives-templated-control",
		"button-avalonia-controls-extra",
	}, ControlSlugs(doc.Controls, doc.TrimPrefix))
}

func TestRenderControlPage(t *testing.T) {
	out := RenderControlPage(sampleControls().Controls[0], 0)

	assert.Contains(t, out, "# Button\n")
	assert.Contains(t, out, "- Full type: `Avalonia.Controls.Button`\n")
	assert.Contains(t, out, "- Assembly: `Avalonia.Controls`\n")
	assert.Contains(t, out, "- Base types: `ContentControl, ICommandSource`\n")
	assert.Contains(t, out, "- Kind: `control`\n")
	assert.Contains(t, out, "## Basic APIs\n\n- `public ICommand? Command { get; set; }`\n- `public event EventHandler? Click`\n")
	assert.Contains(t, out, "```xml\n<Button x:Name=\"SampleButton\" />\n```\n")
	assert.Contains(t, out, "using Avalonia.Controls;\n\nvar control = new Button();\n")
}

func TestRenderControlPage_AbstractWithoutMembers(t *testing.T) {
	out := RenderControlPage(sampleControls().Controls[1], 4)

	assert.Contains(t, out, "- Kind: `abstract control`\n")
	assert.Contains(t, out, "- No additional public members are declared on this type")
	assert.Contains(t, out, "<local:MyTemplatedControl x:Name=\"SampleTemplatedControl\" />")
	assert.Contains(t, out, "public sealed class MyTemplatedControl : TemplatedControl\n{\n}\n\nvar control = new MyTemplatedControl();\n")
}

func TestRenderControlPage_CapsMembers(t *testing.T) {
	control := m.ControlType{Name: "A", Members: []string{"public int X;", "public int Y;", "public int Z;"}}

	out := RenderControlPage(control, 2)

	assert.Contains(t, out, "- `public int Y;`\n")
	assert.NotContains(t, out, "public int Z;")
	assert.Contains(t, out, "- Base types: `None`\n")
}

func TestRenderControlsIndex(t *testing.T) {
	doc := sampleControls()

	out := RenderControlsIndex(doc, ControlSlugs(doc.Controls, doc.TrimPrefix))

	assert.Contains(t, out, "# Controls Reference Index\n")
	assert.Contains(t, out, "- Generated at (UTC): `2026-01-02 03:04:05Z`\n")
	assert.Contains(t, out, "- Repository: `Avalonia@11.3.12`\n")
	assert.Contains(t, out, "- Controls documented: `3`\n")
	assert.Contains(t, out, "## Avalonia.Controls\n\n- [Button](button.md) (`Avalonia.Controls.Button`)\n- [Button](button-avalonia-controls-extra.md)")
	assert.Contains(t, out, "## Avalonia.Controls.Primitives\n\n- [TemplatedControl](primitives-templated-control.md)")
}

func TestControlsStore_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "references", "controls")

	written, err := NewControlsStore().Write(m.Path(dir), sampleControls())
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "button.md")),
		m.Path(filepath.Join(dir, "primitives-templated-control.md")),
		m.Path(filepath.Join(dir, "button-avalonia-controls-extra.md")),
		m.Path(filepath.Join(dir, ControlsIndexName)),
	}, written)

	page, err := os.ReadFile(filepath.Join(dir, "button.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "- Source: `src/Avalonia.Controls/Button.cs`")

	index, err := os.ReadFile(filepath.Join(dir, ControlsIndexName))
	require.NoError(t, err)
	assert.Contains(t, string(index), "- Controls documented: `3`")
}
