package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docvault/internal/domain"
)

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <json>",
		Short: "Merge fields over the document with the given id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			updates, err := parseDocument(args[1])
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			doc, err := s.Update(id, updates)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no document with id %d", id)
			}
			if err != nil {
				return err
			}
			return printJSON(doc)
		},
	}
}
