package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docvault/internal/domain"
	"docvault/internal/store"
)

func passwdCmd() *cobra.Command {
	var oldPassword, newPassword string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Re-encrypt the store under a new password",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if oldPassword == "" {
				if oldPassword, err = promptPassword("Old password"); err != nil {
					return err
				}
			}
			if newPassword == "" {
				if newPassword, err = promptPassword("New password"); err != nil {
					return err
				}
			}
			if newPassword == "" {
				return fmt.Errorf("new password must not be empty")
			}

			// Open with the old password as the active one; rotation decodes
			// under it before anything is rewritten.
			s, err := store.Open(filePath,
				store.WithPassword(oldPassword),
				store.WithIterations(iterations),
				store.WithDigest(digest),
				store.WithAlgorithm(algorithm),
			)
			if err != nil {
				return err
			}
			if err := s.ChangePassword(oldPassword, newPassword); err != nil {
				if errors.Is(err, domain.ErrAuthentication) {
					return fmt.Errorf("old password rejected; store left unchanged")
				}
				return err
			}
			log.Infof("store re-encrypted")
			fmt.Println("password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&oldPassword, "old", "", "current password (prompted when omitted)")
	cmd.Flags().StringVar(&newPassword, "new", "", "replacement password (prompted when omitted)")
	return cmd
}
