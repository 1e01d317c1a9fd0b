package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
)

// bindQueryFilter decodes URL query parameters into a filter struct using its
// mapstructure tags. Repeated parameters become slices; timestamps are
// expected in RFC 3339.
func bindQueryFilter(c *gin.Context, out interface{}) error {
	values := c.Request.URL.Query()
	input := make(map[string]interface{}, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			input[key] = vals[0]
		} else {
			input[key] = vals
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
