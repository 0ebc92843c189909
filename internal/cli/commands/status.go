package commands

import (
	"context"
	"fmt"
	"net/http"

	"ItemGateway/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить доступность шлюза" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := newAPI(cfg).DoJSON(ctx, http.MethodGet, "/healthz", nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Status: %s (%s)\n", resp.Status, cfg.GatewayURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
