package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ItemGateway/internal/cli/api"
	"ItemGateway/internal/cli/auth"
	"ItemGateway/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Проверить access token и сохранить его" }
func (loginCmd) Usage() string       { return "login <access_token>" }

func (loginCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	client := api.NewClient(cfg.GatewayURL, args[0])
	id, err := currentUserID(ctx, client)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
			return errors.New("invalid or expired token")
		}
		return err
	}
	if err := auth.SaveToken(args[0]); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", id)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Удалить сохранённый токен" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, _ *config.ClientConfig, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := auth.DeleteToken(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Показать id текущего пользователя" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	id, err := currentUserID(ctx, newAPI(cfg))
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, id)
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(whoamiCmd{})
}
