package commands

import (
	"github.com/spf13/cobra"

	"docvault/internal/domain"
)

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [json-query]",
		Short: "Print documents matching a flat equality query (all when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query domain.Document
			if len(args) == 1 {
				q, err := parseDocument(args[0])
				if err != nil {
					return err
				}
				query = q
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			docs, err := s.Find(query)
			if err != nil {
				return err
			}
			log.Infof("%d match(es)", len(docs))
			return printJSON(docs)
		},
	}
}
