package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/spf13/cobra"
)

// sessionProvider returns the session the command reads from.
type sessionProvider func() *session

// summaryOutput is the JSON shape of the summary command.
type summaryOutput struct {
	budget.Summary
	Expenses float64 `json:"expenses"`
	Currency string  `json:"currency"`
}

type summaryCommand struct {
	session sessionProvider
}

// newSummaryCmd creates the summary command.
func newSummaryCmd(session sessionProvider) *cobra.Command {
	c := summaryCommand{session: session}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show budget totals",
		Long:  `Show total income, bills, paid and unpaid bills, projected expenses and available funds.`,
		RunE:  c.run,
	}
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	return cmd
}

func (c *summaryCommand) run(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := checkOutputFormat(outputFormat); err != nil {
		return err
	}

	sess := c.session()
	s := sess.store.Summary()

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), summaryOutput{
			Summary:  s,
			Expenses: s.Expenses(),
			Currency: sess.formatter.Code(),
		})
	case tableOutputFormat:
		return outputSummaryTable(cmd.OutOrStdout(), sess, s)
	default:
		return errors.New("unsupported output format")
	}
}

func outputSummaryTable(w io.Writer, sess *session, s budget.Summary) error {
	t := createStyledTable("TOTAL", "AMOUNT")

	f := sess.formatter
	t.Row("Income", f.Format(s.TotalIncome))
	t.Row("Bills", f.Format(s.TotalBills))
	t.Row("Paid bills", f.Format(s.PaidBills))
	t.Row("Unpaid bills", f.Format(s.UnpaidBills))
	t.Row("Projected", f.Format(s.TotalProjected))
	t.Row("Expenses", f.Format(s.Expenses()))
	t.Row("Available", f.Format(s.Available))

	_, err := fmt.Fprintln(w, t)
	return err
}
