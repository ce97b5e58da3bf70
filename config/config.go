package config

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// Currency is the ISO 4217 code amounts are displayed in
	Currency string `toml:"currency" mapstructure:"currency"`
	// SeedFile is a TOML file with entries loaded when the session starts
	SeedFile string `toml:"seed" mapstructure:"seed"`
	// Colors overrides the default theme
	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// Colors holds the theme overrides. Empty values keep the defaults.
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Warning       string `toml:"warning" mapstructure:"warning"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Income        string `toml:"income" mapstructure:"income"`
	Expense       string `toml:"expense" mapstructure:"expense"`
	Border        string `toml:"border" mapstructure:"border"`
	Background    string `toml:"background" mapstructure:"background"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary lipgloss.Color) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(primary)

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	return value
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Currency",
			displayValue(config.Currency),
			"Currency amounts are displayed in",
		},
		{
			"Seed File",
			displayValue(config.SeedFile),
			"Entries loaded when the session starts",
		},
		{
			"Primary Color",
			displayValue(config.Colors.Primary),
			"Accent color for titles and selections",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
