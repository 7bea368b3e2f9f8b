package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"revenue/internal/app/dsn"
	"revenue/internal/app/repository"
	"revenue/internal/app/role"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database maintenance for the revenue API",
	}

	rootCmd.AddCommand(upCmd(), seedCmd(), createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepository подключается к базе и применяет миграции
func openRepository() (*repository.Repository, error) {
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, errors.New("DSN string is empty, check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logrus.Info("Connected to database successfully")
	return repo, nil
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openRepository(); err != nil {
				return err
			}
			logrus.Info("Database migration completed successfully")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the software catalog with default entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			categories, software := repository.DefaultCatalog()
			if err := repo.SeedCatalog(cmd.Context(), categories, software); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
			logrus.Infof("Catalog seeded: %d categories, %d products", len(categories), len(software))
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			login, _ := cmd.Flags().GetString("login")
			password, _ := cmd.Flags().GetString("password")
			if login == "" || len(password) < 6 {
				return errors.New("login is required and password must be at least 6 characters")
			}

			repo, err := openRepository()
			if err != nil {
				return err
			}
			return createAdmin(cmd.Context(), repo, login, password)
		},
	}

	cmd.Flags().String("login", "admin", "Administrator login")
	cmd.Flags().String("password", "", "Administrator password")

	return cmd
}

func createAdmin(ctx context.Context, repo *repository.Repository, login, password string) error {
	exists, err := repo.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if exists {
		return errors.New("admin already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := repo.CreateUser(ctx, login, string(hash), role.Admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	logrus.Infof("Admin %s created with id %d", user.Login, user.ID)
	return nil
}
