package requester

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header выставляет шлюз аутентификации перед сервисом.
const Header = "X-Customer-ID"

var ErrUnauthenticated = errors.New("customer is not authenticated")

// FromRequest возвращает id клиента из заголовка запроса в каноническом виде.
func FromRequest(r *http.Request) (string, error) {
	customerID := strings.TrimSpace(r.Header.Get(Header))
	if customerID == "" {
		return "", ErrUnauthenticated
	}
	parsed, err := uuid.Parse(customerID)
	if err != nil {
		return "", ErrUnauthenticated
	}
	// в базе id хранится как uuid, сравниваем в каноническом виде
	return parsed.String(), nil
}
