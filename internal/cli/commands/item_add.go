package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ItemGateway/internal/cli/api"
	"ItemGateway/internal/config"
	"ItemGateway/internal/model"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись (владелец по умолчанию текущий пользователь)"
}
func (itemAddCmd) Usage() string { return "item-add <name> <situation> [<user_id>]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	client := newAPI(cfg)
	item := model.NewItem{Name: args[0], Situation: args[1]}
	if len(args) == 3 {
		item.UserID = args[2]
	} else {
		id, err := currentUserID(ctx, client)
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}
		item.UserID = id
	}

	var created []model.Item
	if err := client.DoJSON(ctx, http.MethodPost, "/dados", item, &created); err != nil {
		return err
	}
	if len(created) == 0 {
		return errors.New("server returned no records")
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:        %s\n", created[0].Key())
	fmt.Fprintf(Out, "  name:      %s\n", created[0].Name)
	fmt.Fprintf(Out, "  situation: %s\n", created[0].Situation)
	fmt.Fprintf(Out, "  user:      %s\n", created[0].UserID)
	return nil
}

// currentUserID спрашивает у шлюза, кому принадлежит сохранённый токен.
func currentUserID(ctx context.Context, client *api.Client) (string, error) {
	if client.Token == "" {
		return "", errors.New("not logged in, run: itemctl login <access_token>")
	}
	var resp struct {
		UserID string `json:"userId"`
	}
	if err := client.DoJSON(ctx, http.MethodGet, "/current-user", nil, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func init() { RegisterCmd(itemAddCmd{}) }
