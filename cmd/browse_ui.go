package cmd

import (
	"fmt"
	"strings"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	submenuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	bdjStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	tokenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// browseModel is the bubbletea model for the interactive navigator.
// All navigation state lives in the nav.Navigator; the model only adds
// presentation concerns and the last emitted action token.
type browseModel struct {
	session   *bluray.Session
	navigator *nav.Navigator
	status    string
	width     int
	height    int
}

func newBrowseModel(session *bluray.Session) browseModel {
	return browseModel{
		session:   session,
		navigator: nav.NewNavigator(session.MainMenu()),
		status:    "就绪",
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			m.navigator.Move(-1)

		case "down", "j":
			m.navigator.Move(1)

		case "enter", " ":
			if token, ok := m.navigator.Select(); ok {
				m.status = "执行: " + tokenDescription(m.session, token)
			}

		case "esc", "backspace":
			if !m.navigator.GoBack() {
				m.status = "已在顶级菜单"
			}

		case "home", "g":
			m.navigator.GoHome()
			m.status = "返回主菜单"

		case "tab":
			m = m.toggleMode()
		}
	}
	return m, nil
}

// toggleMode switches between the standard menu and the first BD-J
// application, when the disc has one.
func (m browseModel) toggleMode() browseModel {
	if m.navigator.Mode() == nav.ModeApplication {
		m.navigator.SwitchToStandard()
		m.status = "已切换到标准菜单"
		return m
	}
	apps := m.session.Applications()
	if len(apps) == 0 {
		m.status = "此光盘没有 BD-J 菜单"
		return m
	}
	m.navigator.SetApplication(&apps[0])
	m.status = "已切换到 BD-J 菜单: " + apps[0].ObjectName
	return m
}

func (m browseModel) View() string {
	var b strings.Builder

	header := "蓝光菜单"
	if m.navigator.Mode() == nav.ModeApplication {
		app := m.navigator.Application()
		header = bdjStyle.Render(fmt.Sprintf("BD-J 菜单 [%s]", app.ObjectName))
	} else {
		header = titleStyle.Render(header)
	}
	if depth := m.navigator.Depth(); depth > 0 {
		header += helpStyle.Render(fmt.Sprintf("  (第 %d 层)", depth+1))
	}
	b.WriteString(header + "\n\n")

	items := m.navigator.Items()
	if len(items) == 0 {
		b.WriteString(itemStyle.Render("无可用菜单项") + "\n")
	}
	for i, item := range items {
		line := "  " + item.Title
		if item.IsSubmenu() {
			line += " ▸"
		}
		switch {
		case i == m.navigator.Cursor():
			line = selectedStyle.Render("► " + strings.TrimPrefix(line, "  "))
		case item.IsSubmenu():
			line = submenuStyle.Render(line)
		default:
			line = itemStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + tokenStyle.Render(m.status) + "\n")
	b.WriteString(helpStyle.Render("↑/↓ 移动  enter 选择  esc 返回  home 主菜单  tab 切换 BD-J  q 退出"))
	return b.String()
}

// tokenDescription resolves a token to a host-facing description,
// including the stream a play action would start.
func tokenDescription(session *bluray.Session, token nav.ActionToken) string {
	switch token.Action {
	case bluray.ActionPlayMain, bluray.ActionPlayAll, bluray.ActionBDJPlayMain:
		if stream, ok := session.MainStream(); ok {
			return fmt.Sprintf("%s -> %s", token, stream.Name)
		}
	case bluray.ActionPlayChapter:
		return fmt.Sprintf("播放章节 %s", token.Target)
	}
	return token.String()
}
