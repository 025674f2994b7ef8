package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"majbench/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive command picker",
	Long:  `Browse and execute majbench commands from a filterable list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commands := collectCommands(rootCmd)

		sort.Slice(commands, func(i, j int) bool {
			return commands[i].CommandPath() < commands[j].CommandPath()
		})

		var items []ui.MenuItem
		rootName := rootCmd.Name()

		for _, c := range commands {
			name := c.CommandPath()
			if strings.HasPrefix(name, rootName+" ") {
				name = strings.TrimPrefix(name, rootName+" ")
			} else if name == rootName {
				continue
			}
			items = append(items, ui.MenuItem{Name: name, Desc: c.Short})
		}

		model := ui.NewMenuModel(items)
		p := tea.NewProgram(model, tea.WithAltScreen())

		m, err := p.Run()
		if err != nil {
			return err
		}

		if menuModel, ok := m.(ui.MenuModel); ok && menuModel.Selected != "" {
			selected := menuModel.Selected
			if selected == "menu" {
				return nil
			}

			fmt.Printf("Executing: %s\n", selected)

			exe, err := os.Executable()
			if err != nil {
				return err
			}

			c := exec.Command(exe, strings.Fields(selected)...)
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			return c.Run()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func collectCommands(root *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range root.Commands() {
		if c.Hidden {
			continue
		}
		if c.Runnable() {
			commands = append(commands, c)
		}
		commands = append(commands, collectCommands(c)...)
	}
	return commands
}
