package apis

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/supakorn-kn/go-libros/errors"
)

// BindJSON decodes the request body into obj, reporting decoding problems as MalformedBodyError.
func BindJSON(ctx *gin.Context, obj any) error {

	if err := ctx.ShouldBindJSON(obj); err != nil {
		return errors.MalformedBodyError.New(err.Error())
	}

	return nil
}

// BindTruthyJSON works like BindJSON but rejects a missing body or a body that is a
// falsy JSON value (null, false, 0, "") with EmptyBodyError.
func BindTruthyJSON(ctx *gin.Context, obj any) error {

	if ctx.Request.Body == nil {
		return errors.EmptyBodyError.New()
	}

	raw, err := ctx.GetRawData()
	if err != nil {
		return errors.MalformedBodyError.New(err.Error())
	}

	if isFalsyJSON(raw) {
		return errors.EmptyBodyError.New()
	}

	if err := binding.JSON.BindBody(raw, obj); err != nil {
		return errors.MalformedBodyError.New(err.Error())
	}

	return nil
}

func isFalsyJSON(raw []byte) bool {

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return false
	}

	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	default:
		return false
	}
}
