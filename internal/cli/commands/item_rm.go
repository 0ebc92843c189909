package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ItemGateway/internal/config"
)

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Удалить запись вместе с фотографией" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := newAPI(cfg).DoJSON(ctx, http.MethodDelete, "/delete-item/"+url.PathEscape(args[0]), nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %s: %s\n", args[0], resp.Message)
	return nil
}

func init() { RegisterCmd(itemRmCmd{}) }
