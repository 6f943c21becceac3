package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"refactorings/internal/domain"
)

// TranscriptViewer displays the examples of a run in an interactive TUI
type TranscriptViewer struct{}

// NewTranscriptViewer creates a new TranscriptViewer
func NewTranscriptViewer() *TranscriptViewer {
	return &TranscriptViewer{}
}

// View opens the viewer: examples on the left, the selected example's output
// on the right.
func (tv *TranscriptViewer) View(report *domain.RunReport) error {
	if len(report.Examples) == 0 {
		return fmt.Errorf("run %s executed no examples", report.ID)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, example := range report.Examples {
		list.AddItem(listItemText(i, example), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	pathView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	outputView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(pathView, 2, 0, false).
		AddItem(outputView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(report))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(report.Examples) {
			return
		}
		example := report.Examples[index]
		pathView.SetText(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]", example.Path))
		outputView.SetText(formatExampleOutput(example)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(outputView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	outputView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(report *domain.RunReport) string {
	selector := report.Selector
	if selector == "" {
		selector = "all"
	}
	status := "[green]completed[white]"
	if report.Failed {
		status = "[red]aborted[white]"
	}
	return fmt.Sprintf(" Run %s (%s) %s | ↑↓ navigate, → view output, ← back, q to exit ",
		tview.Escape(selector), report.StartedAt.Format("2006-01-02 15:04:05"), status)
}

func listItemText(index int, example domain.ExampleRun) string {
	if example.Success {
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(example.Key))
	}
	return fmt.Sprintf("[red]%d. ✗[white] %s", index+1, tview.Escape(example.Key))
}

// formatExampleOutput renders an example's output using tview color tags
func formatExampleOutput(example domain.ExampleRun) string {
	var b strings.Builder
	b.WriteString(tview.Escape(example.Output))
	if example.Error != "" {
		if example.Output != "" && !strings.HasSuffix(example.Output, "\n") {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n[red]✗ %s[white]\n", tview.Escape(example.Error))
	}
	return b.String()
}
