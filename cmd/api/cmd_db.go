package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/config"
	dbpkg "github.com/BruksfildServices01/food-ordering/internal/db"
	"github.com/BruksfildServices01/food-ordering/internal/infra/repository"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	ucAccount "github.com/BruksfildServices01/food-ordering/internal/usecase/account"
)

// bootDB loads config and opens a migrated database connection.
func bootDB() (*config.Config, *gorm.DB) {
	cfg := config.Load()
	logging.New(cfg.IsProduction())
	return cfg, dbpkg.NewDB(cfg)
}

// accountService is enough for offline admin tooling: no tokens or sessions
// are issued from the CLI.
func accountService(cfg *config.Config, db *gorm.DB) *ucAccount.Service {
	return ucAccount.NewService(
		repository.NewAccountGormRepository(db),
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		auth.NewMemoryStore(time.Minute),
	)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		bootDB()
		fmt.Println("Schema is up to date.")
		return nil
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage staff accounts",
}

var (
	adminUsername string
	adminEmail    string
	adminPassword string
	adminFullName string
	adminRole     string
)

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff account (super_admin by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db := bootDB()

		a, err := accountService(cfg, db).RegisterAdmin(context.Background(), ucAccount.RegisterAdminInput{
			Username: adminUsername,
			Email:    adminEmail,
			Password: adminPassword,
			FullName: adminFullName,
			Role:     adminRole,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created %s %q (id %d)\n", a.Role, a.Username, a.ID)
		return nil
	},
}

var adminSetPasswordCmd = &cobra.Command{
	Use:   "set-password <username|email>",
	Short: "Reset a staff password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db := bootDB()

		a, err := accountService(cfg, db).SetAdminPassword(context.Background(), args[0], adminPassword)
		if err != nil {
			return err
		}

		fmt.Printf("Password updated for %q\n", a.Username)
		return nil
	},
}

func init() {
	f := adminCreateCmd.Flags()
	f.StringVar(&adminUsername, "username", "", "login name")
	f.StringVar(&adminEmail, "email", "", "email address")
	f.StringVar(&adminPassword, "password", "", "password, at least 6 characters")
	f.StringVar(&adminFullName, "name", "Administrator", "full name")
	f.StringVar(&adminRole, "role", models.AdminRoleSuperAdmin, "admin or super_admin")
	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminSetPasswordCmd.Flags().StringVar(&adminPassword, "password", "", "new password, at least 6 characters")
	_ = adminSetPasswordCmd.MarkFlagRequired("password")
}
