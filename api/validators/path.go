package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

const MsgInvalidID = "ID inválido."

// ParsePathID reads a positive integer route parameter.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, MsgInvalidID).WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
