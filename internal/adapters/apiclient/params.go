package apiclient

import (
	"fmt"
	"net/url"
	"strconv"
)

// BuildQuery собирает query-строку из параметров запроса.
// Пустые значения (nil, "") отбрасываются, булевы значения
// сериализуются как "true"/"false" в нижнем регистре.
func BuildQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			values.Set(key, v)
		case bool:
			values.Set(key, strconv.FormatBool(v))
		case int:
			values.Set(key, strconv.Itoa(v))
		case int64:
			values.Set(key, strconv.FormatInt(v, 10))
		case float64:
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			values.Set(key, fmt.Sprintf("%v", v))
		}
	}

	return values.Encode()
}
