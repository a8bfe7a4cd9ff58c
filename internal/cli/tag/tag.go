package tag

import (
	"github.com/spf13/cobra"
)

// TagCmd returns the tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Long:  "Create and list tags. Use 'todo task tag' to attach tags to tasks.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(LsCmd())

	return cmd
}
