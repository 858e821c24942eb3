// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Torqueworks

package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/torqueworks/lorenztel/pkg/telegram"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive browser for the instrument configuration",
	Long: `Browse the configuration blocks in an interactive terminal UI.

All eight blocks are read once at startup. The left pane lists the blocks;
the right pane shows the decoded fields of the selected block. Press r to
re-read the selected block from the instrument, q to quit.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

var (
	browseTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	browseDetailStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	browseStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	browseErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// blockItem adapts a block to the list widget.
type blockItem struct {
	block *telegram.Block
}

func (i blockItem) Title() string { return i.block.Name() }

func (i blockItem) Description() string {
	policy := "mutable"
	if i.block.ReadOnly() {
		policy = "read only"
	}
	return fmt.Sprintf("id 0x%02X, %s", i.block.ID(), policy)
}

func (i blockItem) FilterValue() string { return i.block.Name() }

// blockReadMsg reports a re-read of one block finishing.
type blockReadMsg struct {
	name string
	err  error
}

type browseModel struct {
	session *Session
	cfg     *telegram.Config
	blocks  list.Model
	status  string
	width   int
	height  int
}

func newBrowseModel(session *Session, cfg *telegram.Config) browseModel {
	items := make([]list.Item, 0, 8)
	for _, b := range cfg.Blocks() {
		items = append(items, blockItem{block: b})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Configuration blocks"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return browseModel{
		session: session,
		cfg:     cfg,
		blocks:  l,
		status:  "r: re-read block   q: quit",
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) rereadSelected() tea.Cmd {
	item, ok := m.blocks.SelectedItem().(blockItem)
	if !ok {
		return nil
	}
	session := m.session
	block := item.block
	return func() tea.Msg {
		return blockReadMsg{name: block.Name(), err: session.ReadBlock(block)}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.status = "reading..."
			return m, m.rereadSelected()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.blocks.SetSize(m.width/3, m.height-2)

	case blockReadMsg:
		if msg.err != nil {
			m.status = browseErrorStyle.Render(fmt.Sprintf("%s: %v", msg.name, msg.err))
		} else {
			m.status = fmt.Sprintf("%s re-read", msg.name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.blocks, cmd = m.blocks.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	detail := ""
	if item, ok := m.blocks.SelectedItem().(blockItem); ok {
		detail = browseTitleStyle.Render("Fields") + "\n" + telegram.FormatBlock(item.block)
	}

	detailWidth := m.width - m.width/3 - 4
	if detailWidth < 20 {
		detailWidth = 20
	}
	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.blocks.View(),
		browseDetailStyle.Width(detailWidth).Render(detail),
	)
	return panes + "\n" + browseStatusStyle.Render(m.status)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	conn, _, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	cfg := telegram.NewConfig()
	session := NewSession(conn)
	if err := session.ReadConfig(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(newBrowseModel(session, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}
