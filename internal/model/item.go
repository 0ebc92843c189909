package model

import "encoding/json"

// Record: строка таблицы ровно в том виде, в каком её отдал бэкенд.
// Колонки, которых шлюз не знает, и null значения сохраняются.
type Record = json.RawMessage

// Item: поля строки tabela1, которые шлюз читает сам. Остальное клиенту отдаётся через Record.
// ID непрозрачен: число, uuid или текст, как решит схема.
type Item struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	Situation string          `json:"situation"`
	UserID    string          `json:"user_id"`
	PhotoURL  string          `json:"photo_url"`
}

// Key возвращает id в виде строки для URL и логов: JSON-строка раскавычивается, число остаётся как есть.
func (i Item) Key() string {
	var s string
	if err := json.Unmarshal(i.ID, &s); err == nil {
		return s
	}
	return string(i.ID)
}

// Пустое поле фильтра не ограничивает выборку.
type ItemFilter struct {
	Situation string
	UserID    string
}

type NewItem struct {
	Name      string `json:"name"`
	Situation string `json:"situation"`
	UserID    string `json:"user_id"`
}

// ItemUpdate описывает частичное обновление, nil поле не меняется.
type ItemUpdate struct {
	Name      *string `json:"name"`
	Situation *string `json:"situation"`
}

// Columns возвращает только заданные поля в виде map колонок.
func (u ItemUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Situation != nil {
		cols["situation"] = *u.Situation
	}
	return cols
}
