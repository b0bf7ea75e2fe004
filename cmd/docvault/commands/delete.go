package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove the document with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			removed, err := s.Delete(id)
			if err != nil {
				return err
			}
			fmt.Println(removed)
			return nil
		},
	}
}
