package repo

import (
	"encoding/json"
	"fmt"

	"ItemGateway/internal/model"
)

// toRecord сериализует строку, прочитанную в map, в JSON. NULL остаётся null.
func toRecord(row map[string]any) (model.Record, error) {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	b, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return model.Record(b), nil
}

func toRecords(rows []map[string]any) ([]model.Record, error) {
	out := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
