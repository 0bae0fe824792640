package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/repository/postgresql"
	userService "github.com/urlopy/urlopy-backend-go/internal/service/user"
)

const passwordEnv = "URLOPY_PASSWORD"

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userListCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var req user.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a user. The password is read from --password or the " + passwordEnv + " environment variable.",
		Example: `  urlopyctl user create --name Szefowa --email szefowa@example.com --role admin
  URLOPY_PASSWORD=secret123 urlopyctl user create --name Jan --email jan@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv(passwordEnv)
			}
			if req.Password == "" {
				return errors.New("password is required: use --password or " + passwordEnv)
			}

			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			svc := userService.NewUserService(postgresql.NewUserRepository(db))
			created, err := svc.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q (id %d)\n", created.Role, created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "login name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Role, "role", string(user.RoleEmployee), "admin or employee")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			users, err := userService.NewUserService(postgresql.NewUserRepository(db)).List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return w.Flush()
		},
	}
}
