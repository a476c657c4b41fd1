package main

import (
	"refresh-tracker/internal/users"

	"github.com/spf13/cobra"
)

func newCreateUserCmd() *cobra.Command {
	var in users.NewUser

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			in.Confirm = in.Password
			u, err := users.NewService(db, log).Create(cmd.Context(), in, "trackerctl")
			if err != nil {
				return err
			}
			return writeJSON(map[string]any{"id": u.ID, "username": u.Username, "role": u.Role})
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "Login name (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password, at least 8 characters (required)")
	cmd.Flags().StringVar(&in.Role, "role", "standard", "admin or standard")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
