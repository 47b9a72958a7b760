package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessBuilders(t *testing.T) {
	tests := []struct {
		name     string
		write    func(http.ResponseWriter, any) error
		data     any
		wantCode int
		wantBody string
	}{
		{name: "OK", write: OK, data: map[string]int{"a": 1}, wantCode: 200, wantBody: `{"name":"OK","code":200,"data":{"a":1}}`},
		{name: "Created", write: Created, data: map[string]string{"type": "Created"}, wantCode: 201, wantBody: `{"name":"Created","code":201,"data":{"type":"Created"}}`},
		{name: "Accepted", write: Accepted, data: nil, wantCode: 202, wantBody: `{"name":"Accepted","code":202,"data":null}`},
		{name: "NoContent", write: NoContent, data: map[string]string{"type": "NoContent"}, wantCode: 204, wantBody: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, tt.write(rec, tt.data))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSuccess_UnencodableData(t *testing.T) {
	rec := httptest.NewRecorder()
	err := OK(rec, map[string]any{"ch": make(chan int)})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, json.Valid(rec.Body.Bytes()))
}
