package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/server/config"
	"github.com/dmitrijs2005/catalog/internal/server/models"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/catalog/internal/server/services"
	"github.com/dmitrijs2005/catalog/internal/shared"
)

// Test seams.
var (
	readPassword = term.ReadPassword
	openDB       = repomanager.Open
)

type noRequest struct{}

func (noRequest) ReadBody(context.Context) ([]byte, error) { return nil, io.EOF }
func (noRequest) PathParam(string) string                  { return "" }

type noSession struct{}

func (noSession) Token() (string, bool) { return "", false }
func (noSession) SetToken(string)       {}
func (noSession) Clear()                {}

func newCreateUserCmd() *cobra.Command {
	var (
		username  string
		email     string
		superuser bool
	)

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadConfigFile(configPath)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			password, err := promptPassword(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			req := models.UserSignUpRequest{UserName: username, Password: password, Email: email}
			resp, err := createUser(cmd.Context(), cfg, req, superuser)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %q with id %d\n", resp.UserName, resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "user name (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "grant superuser rights")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// promptPassword reads the password twice without echo.
func promptPassword(w io.Writer) (string, error) {
	read := func(prompt string) ([]byte, error) {
		if _, err := fmt.Fprint(w, prompt); err != nil {
			return nil, err
		}
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		return pw, err
	}

	first, err := read("Password: ")
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	defer shared.WipeByteArray(first)
	second, err := read("Password (again): ")
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	defer shared.WipeByteArray(second)
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(first), nil
}

func createUser(ctx context.Context, cfg *config.Config, req models.UserSignUpRequest, superuser bool) (models.UserSignUpResponse, error) {
	db, err := openDB(ctx, cfg.DSN())
	if err != nil {
		return models.UserSignUpResponse{}, fmt.Errorf("connecting: %w", err)
	}
	defer db.Close()

	var resp models.UserSignUpResponse
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		sc := &services.Scope{
			Conn:    tx,
			Repos:   repomanager.NewPostgresRepositoryManager(),
			Config:  cfg,
			Request: noRequest{},
			Session: noSession{},
		}
		var err error
		resp, err = services.RegisterUser(sc, req, superuser).Await(ctx).Unwrap()
		return err
	})
	if err != nil {
		return models.UserSignUpResponse{}, fmt.Errorf("creating user: %w", err)
	}
	return resp, nil
}
