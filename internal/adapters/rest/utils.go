package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// decodeAddPropertyRequest анмаршалит уже провалидированное схемой тело.
func decodeAddPropertyRequest(body []byte) (AddPropertyRequest, error) {
	var req AddPropertyRequest
	err := json.Unmarshal(body, &req)
	return req, err
}

// parseFloatOrDefault читает float-параметр. Отсутствие — значение по умолчанию,
// непарсибельное значение — ошибка (ответственность вызывающего — вернуть 400).
func parseFloatOrDefault(query url.Values, key string, def float64) (float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// parseIntOrDefault — то же для целочисленных параметров.
func parseIntOrDefault(query url.Values, key string, def int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// parseOptionalInt возвращает nil, если параметр отсутствует или непарсибелен.
// Такой фильтр просто не попадает в запрос.
func parseOptionalInt(query url.Values, key string) *int {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// parseOptionalFloat — то же для float-фильтров.
func parseOptionalFloat(query url.Values, key string) *float64 {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
