package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/errors"
	"github.com/muhammadheryan/heart2help/utils/logger"
	validatorx "github.com/muhammadheryan/heart2help/utils/validator"
	"go.uber.org/zap"
)

// response is the envelope every endpoint writes.
type response struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Data    any               `json:"data,omitempty"`
	Meta    any               `json:"meta,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, response{Message: message, Data: data})
}

func writeCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, response{Message: message, Data: data})
}

func writePage(w http.ResponseWriter, message string, data any, meta model.PaginationMeta) {
	writeJSON(w, http.StatusOK, response{Message: message, Data: data, Meta: meta})
}

// writeError maps a CustomError onto its HTTP status. Anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	body := response{Message: ce.Error(), Code: ce.ErrorCode(), Errors: ce.Fields()}
	if fields := ce.Fields(); len(fields) > 0 {
		body.Message = firstMessage(fields)
	}
	writeJSON(w, ce.ErrorHTTPCode(), body)
}

func firstMessage(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fields[keys[0]]
}

// decodeJSON reads the body into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validate(dst)
}

// decodeQuery reads the query string into dst and validates it.
func decodeQuery(r *http.Request, dst any) error {
	if err := queryDecoder.Decode(dst, r.URL.Query()); err != nil {
		return queryError(err)
	}
	return validate(dst)
}

func queryError(err error) error {
	var multi schema.MultiError
	if !stderrors.As(err, &multi) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	fields := make(map[string]string, len(multi))
	for field := range multi {
		fields[field] = "The " + field + " is invalid."
	}
	return errors.SetValidationError(fields)
}

func validate(dst any) error {
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetValidationError(validatorx.FieldErrors(err))
	}
	return nil
}

// pathID reads a positive numeric route variable.
func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return id, nil
}

func pageLink(r *http.Request) model.PageLink {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return model.PageLink{
		BaseURL: scheme + "://" + r.Host + r.URL.Path,
		Query:   r.URL.Query(),
	}
}
