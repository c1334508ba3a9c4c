package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"
	"github.com/haierkeys/lead-intention-service/pkg/viacep"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipcodeService_Verify(t *testing.T) {
	dialErr := errors.New("dial tcp: i/o timeout")

	tests := []struct {
		name       string
		input      string
		errs       map[string]error
		wantErr    error
		wantStatus int
		wantCalls  []string
	}{
		{
			name:      "valid with separator",
			input:     "18020-000",
			wantCalls: []string{"18020000"},
		},
		{
			name:       "malformed never calls lookup",
			input:      "1802-000",
			wantErr:    code.ErrorZipcodeInvalid,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty never calls lookup",
			input:      "",
			wantErr:    code.ErrorZipcodeInvalid,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "lookup reports missing",
			input:      "99999999",
			errs:       map[string]error{"99999999": viacep.ErrNotFound},
			wantErr:    code.ErrorZipcodeNotFound,
			wantStatus: http.StatusNotFound,
			wantCalls:  []string{"99999999"},
		},
		{
			name:       "lookup answers non ok",
			input:      "00000000",
			errs:       map[string]error{"00000000": pkgerrors.Wrap(viacep.ErrBadStatus, "status 400")},
			wantErr:    code.ErrorZipcodeInvalid,
			wantStatus: http.StatusBadRequest,
			wantCalls:  []string{"00000000"},
		},
		{
			name:      "transport failure propagates",
			input:     "18020000",
			errs:      map[string]error{"18020000": dialErr},
			wantErr:   dialErr,
			wantCalls: []string{"18020000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &mockLookup{errs: tt.errs}
			svc := NewZipcodeService(lookup, nil)

			addr, err := svc.Verify(context.Background(), tt.input)
			assert.Equal(t, tt.wantCalls, lookup.calls)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "18020000", addr.Zipcode)
				return
			}

			assert.Nil(t, addr)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantStatus != 0 {
				var c *code.Code
				require.True(t, errors.As(err, &c))
				assert.Equal(t, tt.wantStatus, c.StatusCode())
			}
		})
	}
}

func TestZipcodeService_NotFoundMessageNamesCode(t *testing.T) {
	lookup := &mockLookup{errs: map[string]error{"99999999": viacep.ErrNotFound}}
	svc := NewZipcodeService(lookup, nil)

	_, err := svc.Verify(context.Background(), "99999-999")
	var c *code.Code
	require.True(t, errors.As(err, &c))
	assert.Equal(t, "Zip code not found: 99999999", c.MsgIn("en"))
	assert.Equal(t, "CEP não encontrado: 99999999!", c.MsgIn("pt_br"))
}

func TestZipcodeService_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	lookup := &mockLookup{errs: map[string]error{"99999999": viacep.ErrNotFound}}
	svc := NewZipcodeService(lookup, m)

	_, _ = svc.Verify(context.Background(), "18020000")
	_, _ = svc.Verify(context.Background(), "99999999")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ZipcodeLookups.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ZipcodeLookups.WithLabelValues(metrics.OutcomeNotFound)))
}
