// Package table renders leaderboard snapshots as rounded tables on a
// terminal, the only presentation backend the CLI ships.
package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// clearScreen homes the cursor and wipes the display so watch mode
// repaints in place instead of spamming scrollback.
const clearScreen = "\033[H\033[2J"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Renderer draws snapshots with go-pretty tables plus lipgloss-styled
// title, notice and footer lines.
type Renderer struct {
	out   io.Writer
	isTTY bool
}

// NewRenderer creates a renderer writing to out. isTTY gates the
// screen clearing in watch mode; redirected output must never receive
// cursor escapes.
func NewRenderer(out io.Writer, isTTY bool) *Renderer {
	return &Renderer{
		out:   out,
		isTTY: isTTY,
	}
}

// Render draws one snapshot.
func (r *Renderer) Render(snapshot *domain.Snapshot, opts driven.RenderOptions) error {
	if opts.Watch && r.isTTY {
		fmt.Fprint(r.out, clearScreen)
	}

	fmt.Fprintln(r.out, titleStyle.Render("🏆 Leaderboard — "+opts.Period.Description()))

	if opts.Notice != "" {
		fmt.Fprintln(r.out, noticeStyle.Render(opts.Notice))
	}

	if snapshot == nil || len(snapshot.Entries) == 0 {
		fmt.Fprintln(r.out, "No leaderboard data available.")
	} else {
		r.renderTable(snapshot.Entries, opts.CurrentUserID)
	}

	if opts.Watch {
		fmt.Fprintln(r.out, footerStyle.Render(fmt.Sprintf(
			"Refreshing every %d seconds. Press Ctrl+C to exit.", int(opts.Interval.Seconds()))))
	}
	if snapshot != nil && !snapshot.FetchedAt.IsZero() {
		fmt.Fprintln(r.out, footerStyle.Render(
			"Last refreshed: "+snapshot.FetchedAt.Format("2006-01-02 15:04:05")))
	}

	return nil
}

// renderTable draws the entry rows. Cell colours degrade to plain
// text automatically when the output is not a colour terminal.
func (r *Renderer) renderTable(entries []domain.Entry, currentUserID string) {
	w := table.NewWriter()
	w.SetOutputMirror(r.out)
	w.SetStyle(table.StyleRounded)
	w.AppendHeader(table.Row{"Rank", "Name", "XP", "Completed", "Streak"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Rank", Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Name: "XP", Align: text.AlignRight},
		{Name: "Completed", Align: text.AlignRight},
		{Name: "Streak", Align: text.AlignRight},
	})

	for _, entry := range entries {
		colours := rowColours(entry, currentUserID)
		w.AppendRow(table.Row{
			colours.Sprint(rankCell(entry.Rank)),
			colours.Sprint(entry.User),
			colours.Sprint(entry.XP),
			colours.Sprint(entry.Completed),
			colours.Sprint(entry.Streak),
		})
	}

	w.Render()
}

// rankCell prefixes the podium ranks with their medals.
func rankCell(rank int) string {
	switch rank {
	case 1:
		return "🥇 1"
	case 2:
		return "🥈 2"
	case 3:
		return "🥉 3"
	default:
		return strconv.Itoa(rank)
	}
}

// rowColours picks the row styling. The viewer's own row wins over
// podium colouring so it stays findable at any rank.
func rowColours(entry domain.Entry, currentUserID string) text.Colors {
	if currentUserID != "" && entry.UserID == currentUserID {
		return text.Colors{text.Bold, text.FgYellow}
	}
	switch entry.Rank {
	case 1:
		return text.Colors{text.FgHiYellow}
	case 2:
		return text.Colors{text.FgHiWhite}
	case 3:
		return text.Colors{text.FgYellow}
	default:
		return nil
	}
}
