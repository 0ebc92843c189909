package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID: не передан обязательный идентификатор.
	ErrMissingID = errors.New("missing identifier")
	// ErrMissingParam: не передан обязательный параметр запроса.
	ErrMissingParam = errors.New("missing required parameter")
	// ErrEmptyUpdate: в теле обновления нет ни одного поля.
	ErrEmptyUpdate = errors.New("nothing to update")
)

// DeleteStep: шаг составного удаления, на котором произошла ошибка.
type DeleteStep string

const (
	// StepLookup: строка не найдена или не прочитана; ничего не удалено.
	StepLookup DeleteStep = "lookup"
	// StepBlob: файл не удалён; строка осталась.
	StepBlob DeleteStep = "blob"
	// StepRow: файл удалён, строка нет. Состояние рассогласовано и не исправляется.
	StepRow DeleteStep = "row"
)

// DeleteStepError сообщает, на каком шаге остановилось удаление.
type DeleteStepError struct {
	Step   DeleteStep
	ItemID string
	Key    string
	Err    error
}

func (e *DeleteStepError) Error() string {
	return fmt.Sprintf("delete item %s: %s step: %v", e.ItemID, e.Step, e.Err)
}

func (e *DeleteStepError) Unwrap() error { return e.Err }
