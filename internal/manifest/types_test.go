// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		want    string
		wantErr bool
	}{
		{name: "plain host", apiURL: "https://api.example.com", want: "https://api.example.com"},
		{name: "trailing slash", apiURL: "https://api.example.com/", want: "https://api.example.com"},
		{name: "path prefix kept", apiURL: "http://localhost:8000/v1/", want: "http://localhost:8000/v1"},
		{name: "query dropped", apiURL: "https://api.example.com?x=1", want: "https://api.example.com"},
		{name: "surrounding spaces", apiURL: "  http://localhost:8000 ", want: "http://localhost:8000"},
		{name: "empty", apiURL: "", wantErr: true},
		{name: "no scheme", apiURL: "api.example.com", wantErr: true},
		{name: "ftp scheme", apiURL: "ftp://api.example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{APIURL: tt.apiURL}
			got, err := m.BaseURL()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpointsWithDefaults(t *testing.T) {
	e := HTTPEndpoints{List: "/v2/ideas"}.WithDefaults()
	assert.Equal(t, "/v2/ideas", e.List)
	assert.Equal(t, "/auth/token", e.Token)
	assert.Equal(t, "/agent/execute", e.Execute)
}

func TestApprovePath(t *testing.T) {
	assert.Equal(t, "/agent/approve/7", DefaultEndpoints().ApprovePath(7))
	assert.Equal(t, "/ideas/approve/12", HTTPEndpoints{Approve: "/ideas/approve"}.ApprovePath(12))
}
