package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Italic(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2).Width(60)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
)

const exploreHelp = "←/→ move • enter select • l language • c copy SMILES • e export PDF • q quit"

func newExploreCommand() *cobra.Command {
	var lang string

	command := &cobra.Command{
		Use:   "explore",
		Short: "Explore the oxidation sites interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayLanguage, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language.Parse(%s) > %w", lang, err)
			}
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			exporter, err := env.newExporter("")
			if err != nil {
				return err
			}
			sh, err := env.newShell(displayLanguage,
				shell.WithClipboard(env.newClipboard()),
				shell.WithExporter(exporter),
			)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newExploreModel(cmd.Context(), sh), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("program.Run() > %w", err)
			}
			return nil
		},
	}

	addLanguageFlag(command.Flags(), &lang)
	return command
}

// exploreModel moves a cursor over the regions in draw order. Every key is one shell event.
type exploreModel struct {
	ctx     context.Context
	shell   *shell.Shell
	regions []string
	cursor  int
	notice  *shell.Notice
}

func newExploreModel(ctx context.Context, sh *shell.Shell) exploreModel {
	return exploreModel{
		ctx:     ctx,
		shell:   sh,
		regions: sh.Scene().RegionIDs(),
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right", "tab":
		m.cursor = (m.cursor + 1) % len(m.regions)
	case "left", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.regions)) % len(m.regions)
	case "enter", " ":
		m.shell.Click(m.regions[m.cursor])
		m.notice = nil
	case "l":
		m.shell.ToggleLanguage()
		m.notice = nil
	case "c":
		notice := m.shell.CopyNotation(m.ctx)
		m.notice = &notice
	case "e":
		_, notice := m.shell.Export(m.ctx)
		m.notice = &notice
	}
	return m, nil
}

func (m exploreModel) View() string {
	view := m.shell.View(shell.ModeInteractive)

	var list strings.Builder
	for i, id := range m.regions {
		label := id
		if record, ok := m.shell.Catalog().Lookup(id); ok {
			label = record.Title.In(view.Language)
		}
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		if id == view.Highlighted {
			label = selectedStyle.Render("● " + label)
		}
		list.WriteString(marker + label + "\n")
	}

	var panel string
	if d := view.Detail; d != nil {
		parts := []string{
			badgeStyle.Render(d.Badge),
			titleStyle.Render(d.Title),
			"",
			infoStyle.Render(view.Labels.Description),
			d.Description,
			"",
			infoStyle.Render(view.Labels.Products),
			d.Products,
		}
		if d.Mechanism != nil {
			parts = append(parts, "", infoStyle.Render(view.Labels.Mechanism), *d.Mechanism)
		}
		parts = append(parts, "", infoStyle.Render(view.Labels.Source+" "+d.SourcePages))
		panel = panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	} else {
		panel = panelStyle.Render(infoStyle.Render(view.Placeholder))
	}

	sections := []string{
		titleStyle.Render(view.Title),
		infoStyle.Render(view.Instruction),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", panel),
	}
	if m.notice != nil {
		style := failureStyle
		switch {
		case m.notice.OK:
			style = successStyle
		case m.notice.Manual:
			style = titleStyle
		}
		sections = append(sections, "", style.Render(m.notice.Message))
	}
	sections = append(sections, "", helpStyle.Render(exploreHelp))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
