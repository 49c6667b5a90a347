package main

import (
	"fmt"
	"strings"
)

// Run executes the languages command.
func (c *LanguagesListCmd) Run(deps *Dependencies) error {
	for _, lang := range deps.Languages.Languages() {
		tokens := make([]string, 0, len(lang.Styles))
		for _, s := range lang.Styles {
			tokens = append(tokens, s.String())
		}
		fmt.Fprintf(deps.Stdout, "%s  .%s  %s\n", lang.Name, lang.Extension, strings.Join(tokens, ", "))
	}
	return nil
}
