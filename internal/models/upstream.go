package models

import (
	"encoding/json"
	"time"
)

// UpstreamInfo представляет блок пагинации в ответе API коллекции.
// Сервис знает только про два поля: Next переписывается с подменой ключа,
// Prev очищается. Все остальные поля блока (totalrecords, pages,
// responsetime и прочие) транслируются без изменений через Extra.
type UpstreamInfo struct {
	Next  string
	Prev  string
	Extra map[string]json.RawMessage
}

// UnmarshalJSON разбирает блок info, сохраняя неизвестные поля как есть
func (i *UpstreamInfo) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["next"]; ok {
		if err := json.Unmarshal(raw, &i.Next); err != nil {
			return err
		}
		delete(fields, "next")
	}
	if raw, ok := fields["prev"]; ok {
		if err := json.Unmarshal(raw, &i.Prev); err != nil {
			return err
		}
		delete(fields, "prev")
	}

	i.Extra = fields
	return nil
}

// MarshalJSON собирает блок info обратно. Next и Prev сериализуются всегда:
// после подмены ключа Prev возвращается пустой строкой, а не пропадает
// из ответа. Неизвестные поля возвращаются в исходном виде.
func (i UpstreamInfo) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(i.Extra)+2)
	for k, v := range i.Extra {
		fields[k] = v
	}

	next, err := json.Marshal(i.Next)
	if err != nil {
		return nil, err
	}
	fields["next"] = next

	prev, err := json.Marshal(i.Prev)
	if err != nil {
		return nil, err
	}
	fields["prev"] = prev

	return json.Marshal(fields)
}

// UpstreamResponse представляет ответ API коллекции.
// Записи не разбираются: сервис транслирует их без изменений.
type UpstreamResponse struct {
	Info    UpstreamInfo      `json:"info"`
	Records []json.RawMessage `json:"records"`
}

// SearchRecord представляет одну запись в истории поиска
type SearchRecord struct {
	UUID      string    `json:"uuid"`
	Query     string    `json:"query"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}
