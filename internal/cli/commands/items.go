package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ItemGateway/internal/config"
	"ItemGateway/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать записи (опционально по situation)"
}
func (itemsCmd) Usage() string { return "items [situation]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "/dados"
	if len(args) == 1 {
		path += "?" + url.Values{"situation": {args[0]}}.Encode()
	}
	var list []model.Item
	if err := newAPI(cfg).DoJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		photo := ""
		if it.PhotoURL != "" {
			photo = "  photo=" + it.PhotoURL
		}
		fmt.Fprintf(Out, "- %s  name=%s  situation=%s  user=%s%s\n", it.Key(), it.Name, it.Situation, it.UserID, photo)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
