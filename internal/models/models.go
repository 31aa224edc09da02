package models

// CategoryValue представляет одно выбранное значение фильтра:
// отображаемую метку и числовой идентификатор в API коллекции.
type CategoryValue struct {
	Label string `json:"label"`
	ID    int64  `json:"id"`
}

// CategoryFilter представляет одну категорию фильтра (medium, culture, period)
// с выбранными значениями. Порядок значений соответствует порядку выбора.
type CategoryFilter struct {
	Name   string          `json:"name"`
	Values []CategoryValue `json:"values"`
}

// FilterSelection представляет выбор фильтров пользователя.
// Size присутствует всегда; категории хранятся в срезе,
// чтобы сохранить порядок обхода при сериализации.
type FilterSelection struct {
	Size       int              `json:"size"`
	Categories []CategoryFilter `json:"categories,omitempty"`
}

// QueryParam представляет одну пару ключ-значение плоского запроса.
// Значения многозначных категорий уже соединены символом "|".
type QueryParam struct {
	Key   string
	Value string
}

// ErrorResponse представляет тело ответа при ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}
