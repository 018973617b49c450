package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToPoysha(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "35999", want: 3599900},
		{in: "599.99", want: 59999},
		{in: "0", want: 0},
		{in: "0.01", want: 1},
		{in: "", wantErr: nil}, // пустая строка даёт собственную ошибку, не сентинел
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "-5", wantErr: e.ErrPriceNegative},
		{in: "10.999", wantErr: e.ErrPricePrecision},
		{in: "1000000000", want: 100_000_000_000}, // ровно на пределе
		{in: "1000000000.01", wantErr: e.ErrInvalidPrice},
		{in: "10000000000", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePriceToPoysha(tc.in)
			if tc.in == "" {
				require.Error(t, err)
				return
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatPoysha(t *testing.T) {
	assert.Equal(t, "35999.00", formatPoysha(3599900))
	assert.Equal(t, "599.99", formatPoysha(59999))
	assert.Equal(t, "0.00", formatPoysha(0))
}

func TestToHTTPResponse(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrChatBusy, http.StatusConflict},
		{e.ErrEmptyMessage, http.StatusBadRequest},
		{e.ErrUnknownCategory, http.StatusBadRequest},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.Wrap("op", e.ErrChatBusy), http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		code, _ := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, "error: %v", tc.err)
	}
}

func TestSessionIDEchoesHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Session-ID", "abc-123")
	w := httptest.NewRecorder()

	sid := sessionID(w, r)
	assert.Equal(t, "abc-123", sid)
	assert.Equal(t, "abc-123", w.Header().Get("X-Session-ID"))
}

func TestSessionIDGeneratesWhenMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	sid := sessionID(w, r)
	require.NotEmpty(t, sid)
	assert.Equal(t, sid, w.Header().Get("X-Session-ID"))
}
