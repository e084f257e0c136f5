package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithTraceID runs withTraceID around a handler that records the
// request it received.
func serveWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, seen
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "caller id is echoed", incoming: "req-42", wantSame: true},
		{name: "uuid from caller is echoed", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "missing id is generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, seen := serveWithTraceID(newTestHandler(), tt.incoming)

			require.NotNil(t, seen, "next handler must be called")
			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)

			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}

			parsed, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
		})
	}
}

func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	h := newTestHandler()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _ := serveWithTraceID(h, "")
			ids <- rr.Header().Get(traceIDHeader)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestWithTraceID_ContextLoggerCarriesTraceID(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler()
	h.logger = &logger.Logger{Logger: zerolog.New(&logBuf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logBuf.String(), `"trace_id":"abc-123"`)
	assert.Contains(t, logBuf.String(), `"message":"inside handler"`)
}

func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler()
	h.logger = &logger.Logger{Logger: zerolog.New(&logBuf)}

	serveWithTraceID(h, "abc-123")
	h.logger.Info().Msg("after request")

	assert.NotContains(t, logBuf.String(), "trace_id")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
	assert.Empty(t, req.Header.Get(traceIDHeader))
}
