package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"timesheet/backend/internal/timesheet"
)

// 与导出文件的状态配色一致
var statusColors = map[string]lipgloss.Color{
	string(timesheet.StatusComplete):   lipgloss.Color("#10B981"),
	string(timesheet.StatusInProgress): lipgloss.Color("#F59E0B"),
	string(timesheet.StatusPending):    lipgloss.Color("#6B7280"),
	string(timesheet.StatusNoEntry):    lipgloss.Color("#EF4444"),
}

// palette 终端输出着色；输出不是终端、设置了 NO_COLOR 或 --no-color 时原样输出
type palette struct {
	enabled bool
	r       *lipgloss.Renderer
}

func newPalette(w io.Writer, noColor bool) palette {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		return palette{}
	}
	return palette{enabled: true, r: lipgloss.NewRenderer(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p palette) status(s string) string {
	c, ok := statusColors[s]
	if !p.enabled || !ok {
		return s
	}
	return p.r.NewStyle().Foreground(c).Render(s)
}

func (p palette) header(s string) string {
	if !p.enabled {
		return s
	}
	return p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")).Render(s)
}

func (p palette) bold(s string) string {
	if !p.enabled {
		return s
	}
	return p.r.NewStyle().Bold(true).Render(s)
}
