package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-service/internal/mock"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.2.3"},
		{name: "version with special chars", version: "v2.0.0-beta+build.42"},
		{name: "empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			appInfo := mock.NewMockAppInfoService(ctrl)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			h := newTestHandler()
			h.services = &service.Services{AppInfoService: appInfo}

			req := httptest.NewRequest(http.MethodGet, "/version", nil)
			rec := httptest.NewRecorder()

			h.getServerVersion(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}
