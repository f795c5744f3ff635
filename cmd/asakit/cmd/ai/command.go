// Package ai implements the ai command.
package ai

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/cmd/cmdutil"
	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/keywords"
)

// NewCommand creates the ai command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ai",
		GroupID: "tools",
		Short:   "Send text to the LLM with a role and task prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewRunCommand(app))
	return cmd
}

// NewRunCommand creates the ai run subcommand.
func NewRunCommand(app application.Application) *cobra.Command {
	var (
		roleName string
		taskName string
		lang     string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "run [text...]",
		Short: "Process text with a role and task",
		Long: fmt.Sprintf(`Run sends the text under a system prompt built from the role and task and
prints the answer.

Roles: %s
Tasks: %s`, strings.Join(llm.RoleNames(), ", "), strings.Join(llm.TaskNames(), ", ")),
		Example: `  asakit ai run --task translate --target-language PTB "coin identifier"
  asakit ai run --task extract-keywords --file input/suggestions.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.Logger()

			role, err := llm.ParseRole(roleName)
			if err != nil {
				return errors.NewValidationError("role", roleName, err.Error())
			}
			task, err := llm.ParseTask(taskName)
			if err != nil {
				return errors.NewValidationError("task", taskName, err.Error())
			}

			text := strings.Join(args, " ")
			if file != "" {
				text, err = keywords.ReadBlob(file)
				if err != nil {
					return cmdutil.HandleFileError(logger, err, "Failed to read input")
				}
			}
			if strings.TrimSpace(text) == "" {
				return errors.NewValidationError("text", text, "provide text as arguments or with --file")
			}

			client, err := app.LLM(cmd.Context())
			if err != nil {
				return err
			}
			answer, err := client.Process(cmd.Context(), text, role, task, llm.TaskParams{TargetLanguage: lang})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	cmd.Flags().StringVar(&roleName, "role", llm.CoinExpert.String(), "Expert role")
	cmd.Flags().StringVar(&taskName, "task", llm.Translate.String(), "Task to perform")
	cmd.Flags().StringVar(&lang, "target-language", llm.DefaultTargetLanguage, "Target language for translate")
	cmd.Flags().StringVar(&file, "file", "", "Read the text from a file instead of the arguments")
	return cmd
}
