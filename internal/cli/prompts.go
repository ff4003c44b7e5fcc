package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func (c *CLI) printTableHelp() {
	C.Header.Fprintln(c.out, "\n--- Table Help ---")
	fmt.Fprintln(c.out, "Inspect the game the way your seat sees it.")

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"hand", "ha", "Display the cards in your hand."},
		{"counts", "c", "Show how many cards every seat holds."},
		{"has <card>", "", "Check whether you hold a card."},
		{"turn", "t", "Show whose turn it is."},
		{"next", "n", "Move on to the next seat's turn."},
		{"reveal", "r", "End the game and reveal every hand and the solution."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Leave the table."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) (string, error) {
	for {
		C.Prompt.Fprint(c.out, prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Fprintln(c.out, "\nGoodbye!")
			return "", err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}

func (c *CLI) promptWithDefault(prompt, def string) (string, error) {
	if def == "" {
		return c.promptForString(prompt)
	}
	C.Prompt.Fprint(c.out, prompt)
	input, err := c.line.PromptWithSuggestion("", def, -1)
	if err != nil {
		C.Info.Fprintln(c.out, "\nGoodbye!")
		return "", err
	}
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		c.line.AppendHistory(trimmed)
		return trimmed, nil
	}
	return def, nil
}

func (c *CLI) promptForSelection(prompt string, options []string) (string, error) {
	for {
		C.Header.Fprintln(c.out, "\n"+prompt)
		for i, opt := range options {
			fmt.Fprintf(c.out, " %2d: %s\n", i+1, opt)
		}
		input, err := c.promptForString("Enter number or name: ")
		if err != nil {
			return "", err
		}
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return options[num-1], nil
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt, nil
			}
		}
		C.Warn.Fprintln(c.out, "Invalid selection.")
	}
}
