package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SubtaskCmd())
	cmd.AddCommand(TagCmd())

	return cmd
}
