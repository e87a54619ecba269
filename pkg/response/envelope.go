package response

import (
	"errors"
	"net/http"

	"github.com/nekogravitycat/queryshape/pkg/apperror"
)

// SuccessMessage is the message carried by every successful envelope.
const SuccessMessage = "Request successfully completed."

var ErrMetaRequired = errors.New("metadata is required for list responses")

// Envelope is the standard wrapper for every API response.
// StatusCode and Headers belong to the transport and are not part of the body.
type Envelope[T any] struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       *T                `json:"data"`
	Meta       *Metadata         `json:"meta,omitempty"`
	StatusCode int               `json:"-"`
	Headers    map[string]string `json:"-"`
}

// Option customizes an envelope built by one of the factories.
type Option func(*options)

type options struct {
	status  int
	headers map[string]string
	meta    *Metadata
}

// WithStatus overrides the default status code.
func WithStatus(code int) Option {
	return func(o *options) {
		o.status = code
	}
}

// WithHeaders merges the given headers into the envelope.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithHeader sets a single header.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers[key] = value
	}
}

// WithMeta attaches metadata to a single-item success envelope.
func WithMeta(meta *Metadata) Option {
	return func(o *options) {
		o.meta = meta
	}
}

func buildOptions(defaultStatus int, opts []Option) *options {
	o := &options{
		status:  defaultStatus,
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Success wraps a single item. The status defaults to 200.
func Success[T any](data T, opts ...Option) Envelope[T] {
	o := buildOptions(http.StatusOK, opts)
	return Envelope[T]{
		Success:    true,
		Message:    SuccessMessage,
		Data:       &data,
		Meta:       o.meta,
		StatusCode: o.status,
		Headers:    o.headers,
	}
}

// SuccessList wraps a page of items. Lists always travel with metadata,
// so a nil meta is rejected with a KindArgument error.
func SuccessList[T any](data []T, meta *Metadata, opts ...Option) (Envelope[[]T], error) {
	if meta == nil {
		return Envelope[[]T]{}, apperror.Argument(ErrMetaRequired, ErrMetaRequired.Error())
	}

	// Handle empty slice to avoid JSON outputting null
	if data == nil {
		data = make([]T, 0)
	}

	o := buildOptions(http.StatusOK, opts)
	return Envelope[[]T]{
		Success:    true,
		Message:    SuccessMessage,
		Data:       &data,
		Meta:       meta,
		StatusCode: o.status,
		Headers:    o.headers,
	}, nil
}

// Failure builds an envelope without data or metadata. The status defaults to 400.
func Failure[T any](message string, opts ...Option) Envelope[T] {
	o := buildOptions(http.StatusBadRequest, opts)
	return Envelope[T]{
		Success:    false,
		Message:    message,
		StatusCode: o.status,
		Headers:    o.headers,
	}
}

// NotFound is a 404 failure.
func NotFound[T any](message string, headers map[string]string) Envelope[T] {
	return Failure[T](message, WithHeaders(headers), WithStatus(http.StatusNotFound))
}

// Unauthorized is a 401 failure.
func Unauthorized[T any](message string, headers map[string]string) Envelope[T] {
	return Failure[T](message, WithHeaders(headers), WithStatus(http.StatusUnauthorized))
}

// InternalError is a 500 failure.
func InternalError[T any](message string, headers map[string]string) Envelope[T] {
	return Failure[T](message, WithHeaders(headers), WithStatus(http.StatusInternalServerError))
}

// FromError converts err into a failure envelope.
// It checks if the error is an AppError to determine the status code and message.
// Any other error becomes a 500 carrying the error's own message.
func FromError[T any](err error, opts ...Option) Envelope[T] {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code := appErr.Code
		if code == 0 {
			code = appErr.Kind.Status()
		}
		return Failure[T](appErr.Message, append(opts, WithStatus(code))...)
	}

	return Failure[T](err.Error(), append(opts, WithStatus(http.StatusInternalServerError))...)
}
