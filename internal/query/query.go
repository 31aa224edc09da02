// Package query содержит преобразования выбора фильтров в строку запроса
// API коллекции. Многозначные категории соединяются символом "|",
// порядок категорий и значений сохраняется.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/muzeyka/artsearch.git/internal/models"
)

// EncodeSelection кодирует выбор фильтров во фрагмент строки запроса.
// Результат начинается с "&size=<n>", далее для каждой категории
// добавляется "&<category>=<v1>|<v2>...". Для nil возвращается пустая
// строка: вызывающая сторона сама убирает ведущий "&" и добавляет "?".
func EncodeSelection(sel *models.FilterSelection) string {
	if sel == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("&size=")
	b.WriteString(strconv.Itoa(sel.Size))

	for _, cat := range sel.Categories {
		if len(cat.Values) == 0 {
			continue
		}
		b.WriteByte('&')
		b.WriteString(cat.Name)
		b.WriteByte('=')
		for i, v := range cat.Values {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(strconv.FormatInt(v.ID, 10))
		}
	}

	return b.String()
}

// Serialize сериализует плоский набор параметров во фрагмент "&key=value...".
// Значения подставляются как есть, без экранирования: разделитель "|"
// должен остаться литеральным по соглашению API коллекции.
func Serialize(params []models.QueryParam) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteByte('&')
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// ParseRawQuery разбирает сырую строку запроса в упорядоченный набор
// параметров. Стандартный url.Values не подходит: это map, и порядок
// ключей клиента в нем теряется.
// Экранирование снимается только со значений (клиенты присылают "%7C"
// вместо "|"); ключи - имена категорий фильтров и передаются как есть.
func ParseRawQuery(raw string) []models.QueryParam {
	if raw == "" {
		return nil
	}

	var params []models.QueryParam
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}
		params = append(params, models.QueryParam{Key: key, Value: value})
	}

	return params
}
