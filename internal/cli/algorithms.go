package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// algorithmsCommand creates the algorithms command.
func (c *CLI) algorithmsCommand() *cobra.Command {
	var sortsOnly bool

	cmd := &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos", "ls"},
		Short:   "List the available algorithms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), algorithmsTable(sorting.All(), sortsOnly))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortsOnly, "sorts", false, "only list sorting algorithms")

	return cmd
}

// algorithmsTable renders infos as a rounded lipgloss table.
func algorithmsTable(infos []sorting.Info, sortsOnly bool) string {
	var rows [][]string
	for _, info := range infos {
		if sortsOnly && !info.Sort {
			continue
		}
		kind := "sort"
		if !info.Sort {
			kind = "setup"
		}
		rows = append(rows, []string{string(info.ID), info.Alias, kind, info.Summary})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Alias", "Kind", "Summary").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 2:
				if rows[row][2] == "setup" {
					return base.Foreground(colorDim)
				}
				return base.Foreground(colorGreen)
			case 3:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}
