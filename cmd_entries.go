package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/spf13/cobra"
)

type entriesListCommand struct {
	session sessionProvider
}

// newEntriesCmd creates the entries command with its list subcommand.
func newEntriesCmd(session sessionProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Budget entry commands",
		Long:  `Commands for inspecting income, bills and projected expenses.`,
	}

	listCmd := entriesListCommand{session: session}
	entriesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries of one kind",
		Long:  `List income, bills or projected expenses in insertion order.`,
		RunE:  listCmd.run,
	}
	entriesListCmd.Flags().StringP("kind", "k", "", "Entry kind: income, bills or projected")
	entriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	_ = entriesListCmd.MarkFlagRequired("kind")

	cmd.AddCommand(entriesListCmd)
	return cmd
}

func (c *entriesListCommand) run(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := checkOutputFormat(outputFormat); err != nil {
		return err
	}

	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := budget.ParseKind(kindFlag)
	if err != nil {
		return fmt.Errorf("invalid --kind: %w", err)
	}

	sess := c.session()

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), entriesOf(sess.store, kind))
	case tableOutputFormat:
		return outputEntriesTable(cmd.OutOrStdout(), sess, kind)
	default:
		return errors.New("unsupported output format")
	}
}

// entriesOf returns the collection of kind as a JSON-ready value.
func entriesOf(store *budget.Store, kind budget.Kind) any {
	switch kind {
	case budget.KindBill:
		return store.Bills()
	case budget.KindProjectedExpense:
		return store.ProjectedExpenses()
	default:
		return store.Incomes()
	}
}

func outputEntriesTable(w io.Writer, sess *session, kind budget.Kind) error {
	f := sess.formatter

	var t fmt.Stringer
	switch kind {
	case budget.KindBill:
		bt := createStyledTable("ID", "DESCRIPTION", "AMOUNT", "PAID")
		for _, b := range sess.store.Bills() {
			bt.Row(b.ID, b.Description, f.Format(b.Amount), fmt.Sprint(b.Paid))
		}
		t = bt
	case budget.KindProjectedExpense:
		pt := createStyledTable("ID", "DESCRIPTION", "AMOUNT", "CATEGORY")
		for _, p := range sess.store.ProjectedExpenses() {
			pt.Row(p.ID, p.Description, f.Format(p.Amount), p.Category.String())
		}
		t = pt
	default:
		it := createStyledTable("ID", "DESCRIPTION", "AMOUNT")
		for _, i := range sess.store.Incomes() {
			it.Row(i.ID, i.Description, f.Format(i.Amount))
		}
		t = it
	}

	_, err := fmt.Fprintln(w, t)
	return err
}
