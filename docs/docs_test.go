package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var parsed struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Schemes []string                  `json:"schemes"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, "gw-threat-intel API", parsed.Info.Title)
	assert.Equal(t, "1.0.0", parsed.Info.Version)
	assert.Equal(t, []string{"http"}, parsed.Schemes)

	for path, method := range map[string]string{
		"/register":             "post",
		"/login":                "post",
		"/health-check":         "get",
		"/threats/reports":      "post",
		"/threats/reports/{id}": "get",
	} {
		require.Contains(t, parsed.Paths, path)
		assert.Contains(t, parsed.Paths[path], method, path)
	}
}
