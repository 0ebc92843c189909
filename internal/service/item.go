package service

import (
	"context"
	"strings"

	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/storage"

	"go.uber.org/zap"
)

// ItemService инкапсулирует операции с Item: проксирование в хранилище строк
// и составное удаление вместе с фотографией.
type ItemService struct {
	items  repo.ItemRepository
	blobs  storage.Store
	logger *zap.SugaredLogger
}

func NewItemService(items repo.ItemRepository, blobs storage.Store, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{items: items, blobs: blobs, logger: logger}
}

// List возвращает строки по фильтрам (AND). Пустой фильтр ничего не исключает.
func (s *ItemService) List(ctx context.Context, filter model.ItemFilter) ([]model.Record, error) {
	return s.items.List(ctx, filter)
}

// ListByOwner: список по владельцу; userID обязателен.
func (s *ItemService) ListByOwner(ctx context.Context, userID, situation string) ([]model.Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingParam
	}
	return s.items.List(ctx, model.ItemFilter{UserID: userID, Situation: situation})
}

func (s *ItemService) Create(ctx context.Context, item model.NewItem) ([]model.Record, error) {
	return s.items.Create(ctx, []model.NewItem{item})
}

func (s *ItemService) Update(ctx context.Context, id string, upd model.ItemUpdate) ([]model.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	cols := upd.Columns()
	if len(cols) == 0 {
		return nil, ErrEmptyUpdate
	}
	return s.items.Update(ctx, id, cols)
}

// Delete удаляет только строку; хранилище файлов не трогается.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	return s.items.Delete(ctx, id)
}

type DeleteResult struct {
	ItemID  string
	BlobKey string
}

// DeleteWithPhoto: чтение строки -> ключ из photo_url -> удаление файла -> удаление строки.
// Каждый шаг выполняется только после успеха предыдущего. Ошибка любого шага
// возвращается как *DeleteStepError; откатов и повторов нет.
//
// Два параллельных вызова для одного id могут оба пройти проверку существования;
// шлюз это не предотвращает.
func (s *ItemService) DeleteWithPhoto(ctx context.Context, id string) (*DeleteResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	// начатая цепочка доводится до конца даже при обрыве клиента
	ctx = context.WithoutCancel(ctx)

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, &DeleteStepError{Step: StepLookup, ItemID: id, Err: err}
	}

	res := &DeleteResult{ItemID: id}
	if item.PhotoURL != "" {
		res.BlobKey = storage.KeyFromURL(item.PhotoURL)
		if err := s.blobs.Remove(ctx, res.BlobKey); err != nil {
			s.logger.Warnw("DeleteWithPhoto: blob removal failed, row kept", "id", id, "key", res.BlobKey, "error", err)
			return nil, &DeleteStepError{Step: StepBlob, ItemID: id, Key: res.BlobKey, Err: err}
		}
		s.logger.Debugw("DeleteWithPhoto: blob removed", "id", id, "key", res.BlobKey)
	} else {
		s.logger.Infow("DeleteWithPhoto: item has no photo, skipping blob removal", "id", id)
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if res.BlobKey != "" {
			s.logger.Errorw("DeleteWithPhoto: blob removed but row deletion failed", "id", id, "key", res.BlobKey, "error", err)
		}
		return nil, &DeleteStepError{Step: StepRow, ItemID: id, Key: res.BlobKey, Err: err}
	}
	return res, nil
}
