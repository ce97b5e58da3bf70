package main

import (
	"fmt"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/section"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// newSectionForm builds the add form for kind. Every field is bound to the
// draft so a reopened form shows what was typed before.
func newSectionForm(kind budget.Kind, draft *section.Draft) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Description").
			Description(fmt.Sprintf("What is this %s?", kindNoun(kind))).
			Key("description").
			Placeholder("Enter a description...").
			Value(&draft.Description),

		huh.NewInput().
			Title("Amount").
			Description("Amount in whole currency units").
			Key("amount").
			Placeholder("e.g. 150000").
			Value(&draft.Amount),
	}

	if kind == budget.KindProjectedExpense {
		categoryOpts := make([]huh.Option[string], len(budget.Categories))
		for i, c := range budget.Categories {
			categoryOpts[i] = huh.NewOption(c.String(), c.String())
		}

		fields = append(fields,
			huh.NewSelect[string]().
				Title("Category").
				Description("Select a category for the expense").
				Options(categoryOpts...).
				Key("category").
				Value(&draft.Category),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func kindNoun(kind budget.Kind) string {
	switch kind {
	case budget.KindBill:
		return "bill"
	case budget.KindProjectedExpense:
		return "expense"
	default:
		return "income"
	}
}

// openSectionForm switches to the add form of kind.
func openSectionForm(m *model, kind budget.Kind) tea.Cmd {
	m.previousSessionState = m.sessionState
	m.formKind = kind
	m.sessionState = sectionForm
	return m.resetForm()
}

func (m *model) resetForm() tea.Cmd {
	m.form = newSectionForm(m.formKind, m.controllers[m.formKind].Draft())
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width).WithHeight(m.height)
	}

	return m.form.Init()
}

func updateSectionForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if !m.controllers[m.formKind].Submit() {
			log.Debug("entry rejected, reopening form", "kind", m.formKind)
			return *m, m.resetForm()
		}

		m.form = nil
		m.refresh()
		m.switchTo(stateFor(m.formKind))
		return *m, nil

	case huh.StateAborted:
		return *m, handleEscape(m)
	}

	return *m, cmd
}

func sectionFormView(m model) string {
	title := m.styles.titleStyle.Render(fmt.Sprintf("Add %s", kindNoun(m.formKind)))
	return title + "\n\n" + m.form.View()
}
