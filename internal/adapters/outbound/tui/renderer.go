package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/gdnkit/gdnkit/internal/domain"
)

var (
	accent  = lipgloss.Color("#478CBF") // godot blue
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	classStyle   = lipgloss.NewStyle().Foreground(fg)
	writtenStyle = lipgloss.NewStyle().Foreground(success)
	skippedStyle = lipgloss.NewStyle().Foreground(dim)
)

// RenderClasses renders the outcome of a scan: one line per discovered
// class with a readable label split from its CamelCase name.
func RenderClasses(classes domain.ClassSet) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gdnkit"))
	b.WriteString(dimStyle.Render("  scan"))
	b.WriteString("\n\n")

	if len(classes) == 0 {
		b.WriteString(dimStyle.Render("no NativeClass declarations found"))
		b.WriteString("\n")
		return b.String()
	}

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(titleStyle.Render(fmt.Sprintf("%d class(es)", len(names))))
	b.WriteString("\n")
	for _, name := range names {
		label := strings.Join(camelcase.Split(name), " ")
		b.WriteString("  ")
		b.WriteString(classStyle.Render(name))
		if label != name {
			b.WriteString(dimStyle.Render("  (" + label + ")"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderReport renders the outcome of a generation run, marking each
// file as written or left untouched.
func RenderReport(report *domain.GenerateReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gdnkit"))
	b.WriteString(dimStyle.Render("  generate"))
	b.WriteString("\n\n")

	b.WriteString(statusLine(report.Manifest, report.ManifestWritten))
	for _, d := range report.Descriptors {
		b.WriteString(statusLine(d.Path, d.Written))
	}

	return b.String()
}

func statusLine(path string, written bool) string {
	if written {
		return fmt.Sprintf("  %s %s\n", writtenStyle.Render("written"), classStyle.Render(path))
	}
	return fmt.Sprintf("  %s %s\n", skippedStyle.Render("kept   "), classStyle.Render(path))
}
