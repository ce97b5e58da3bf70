package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/overview"
	"github.com/spf13/cobra"
)

// categoryOutput is one row of the categories command.
type categoryOutput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// newCategoriesCmd creates the categories command.
func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
		Long:  `Commands for the projected expense categories.`,
	}

	categoriesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `List the categories offered for projected expenses with their display colors.`,
		RunE:  runCategoriesList,
	}
	categoriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	cmd.AddCommand(categoriesListCmd)
	return cmd
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := checkOutputFormat(outputFormat); err != nil {
		return err
	}

	categories := listCategories()

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), categories)
	case tableOutputFormat:
		return outputCategoriesTable(cmd.OutOrStdout(), categories)
	default:
		return errors.New("unsupported output format")
	}
}

func listCategories() []categoryOutput {
	colors := overview.DefaultCategoryColors()

	categories := make([]categoryOutput, 0, len(budget.Categories))
	for _, c := range budget.Categories {
		categories = append(categories, categoryOutput{
			Name:  c.String(),
			Color: string(colors[c]),
		})
	}

	return categories
}

func outputCategoriesTable(w io.Writer, categories []categoryOutput) error {
	t := createStyledTable("NAME", "COLOR")
	for _, c := range categories {
		t.Row(c.Name, c.Color)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}
