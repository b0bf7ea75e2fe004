package commands

import (
	"github.com/spf13/cobra"
)

func insertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <json>",
		Short: "Insert a document and print it with its assigned id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseDocument(args[0])
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			stored, err := s.Insert(doc)
			if err != nil {
				return err
			}
			log.Infof("inserted into %s", s.Path())
			return printJSON(stored)
		},
	}
}
