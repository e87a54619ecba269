package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON sends the envelope through gin: headers first, then the status code and body.
func JSON[T any](c *gin.Context, env Envelope[T]) {
	for k, v := range env.Headers {
		c.Header(k, v)
	}
	c.JSON(statusOf(env), env)
}

// AbortJSON is JSON for middleware; it stops the remaining handlers.
func AbortJSON[T any](c *gin.Context, env Envelope[T]) {
	for k, v := range env.Headers {
		c.Header(k, v)
	}
	c.AbortWithStatusJSON(statusOf(env), env)
}

// WriteHTTP sends the envelope on a plain net/http response writer.
func WriteHTTP[T any](w http.ResponseWriter, env Envelope[T]) error {
	body, err := jsonCodec.Marshal(env)
	if err != nil {
		return err
	}

	for k, v := range env.Headers {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusOf(env))
	_, err = w.Write(body)
	return err
}

func statusOf[T any](env Envelope[T]) int {
	if env.StatusCode == 0 {
		if env.Success {
			return http.StatusOK
		}
		return http.StatusInternalServerError
	}
	return env.StatusCode
}
