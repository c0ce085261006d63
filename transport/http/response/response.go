package response

import (
	"encoding/json"
	"net/http"

	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/failure"
	"github.com/minhquach8/hotel-booking/shared/logger"
)

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Message struct {
	Message string `json:"message"`
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithError sends a failure response carrying the stable reason code and the
// human-readable message
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetStatus(err), Error{
		Error:   failure.GetCode(err),
		Message: err.Error(),
	})
}

// WithPlainText sends a text/plain response body
func WithPlainText(writer http.ResponseWriter, code int, body string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePlainText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(body)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
