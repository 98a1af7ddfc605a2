package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, apiURL string) *Provider {
	t.Helper()
	p, err := NewProvider("Acme", "secret", apiURL, "", APIConfig{})
	require.NoError(t, err)
	return p
}

func TestNewProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := NewProvider("  Acme  ", " secret ", " http://acme.test/api ", "", APIConfig{ActionParam: "act"})
		require.NoError(t, err)

		assert.Equal(t, "Acme", p.Name())
		assert.Equal(t, "secret", p.APIKey())
		assert.Equal(t, "http://acme.test/api", p.APIURL())
		assert.Equal(t, DefaultHTTPMethod, p.HTTPMethod())
		assert.Equal(t, StatusInactive, p.Status())
		assert.True(t, p.IsCustom())
		assert.False(t, p.IsTrashed())
		assert.Equal(t, "act", p.APIConfig().ActionParam)
		assert.Equal(t, DefaultAPIKeyParam, p.APIConfig().APIKeyParam)
		assert.Equal(t, DefaultRefillStatusAction, p.APIConfig().RefillStatusAction)
	})

	tests := []struct {
		name    string
		pName   string
		apiKey  string
		method  string
		wantErr error
	}{
		{name: "empty name", pName: "  ", apiKey: "k", wantErr: ErrNameRequired},
		{name: "empty key", pName: "Acme", apiKey: " ", wantErr: ErrAPIKeyRequired},
		{name: "bad method", pName: "Acme", apiKey: "k", method: "PUT", wantErr: ErrInvalidHTTPMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.pName, tt.apiKey, "", tt.method, APIConfig{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestProvider_Activate(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		wantErr error
	}{
		{name: "valid https", apiURL: "https://acme.test/api/v2"},
		{name: "valid http with port", apiURL: "http://127.0.0.1:8080/api"},
		{name: "empty url", apiURL: "", wantErr: ErrMissingCredentials},
		{name: "relative url", apiURL: "acme.test/api", wantErr: ErrInvalidAPIURL},
		{name: "unsupported scheme", apiURL: "ftp://acme.test", wantErr: ErrInvalidAPIURL},
		{name: "missing host", apiURL: "http://", wantErr: ErrInvalidAPIURL},
		{name: "unparseable", apiURL: "http://[::1", wantErr: ErrInvalidAPIURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, tt.apiURL)
			err := p.Activate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusInactive, p.Status())
				return
			}
			require.NoError(t, err)
			assert.True(t, p.IsActive())
		})
	}
}

func TestProvider_ChangeAPIURLWhileActive(t *testing.T) {
	p := newTestProvider(t, "https://acme.test/api")
	require.NoError(t, p.Activate())

	require.NoError(t, p.ChangeAPIURL("  "))
	assert.Equal(t, "", p.APIURL())
	assert.True(t, p.IsActive(), "a plain url change does not touch the status")
	assert.False(t, p.IsConfigured())

	assert.ErrorIs(t, p.Activate(), ErrMissingCredentials)

	require.NoError(t, p.ChangeAPIURL("not a url"))
	assert.ErrorIs(t, p.Activate(), ErrInvalidAPIURL)
}

func TestProvider_Mutators(t *testing.T) {
	p := newTestProvider(t, "")
	before := p.UpdatedAt()
	time.Sleep(time.Millisecond)

	require.NoError(t, p.Rename(" Acme Two "))
	assert.Equal(t, "Acme Two", p.Name())
	assert.True(t, p.UpdatedAt().After(before))

	assert.ErrorIs(t, p.Rename(""), ErrNameRequired)
	assert.ErrorIs(t, p.ChangeAPIKey(" "), ErrAPIKeyRequired)
	require.NoError(t, p.ChangeAPIKey("new-key"))
	assert.Equal(t, "new-key", p.APIKey())

	require.NoError(t, p.ChangeHTTPMethod("get"))
	assert.Equal(t, "GET", p.HTTPMethod())
	assert.ErrorIs(t, p.ChangeHTTPMethod("patch"), ErrInvalidHTTPMethod)

	p.UpdateAPIConfig(APIConfig{BalanceAction: "bal", LinkParam: "  "})
	assert.Equal(t, "bal", p.APIConfig().BalanceAction)
	assert.Equal(t, DefaultLinkParam, p.APIConfig().LinkParam)
}

func TestReconstructProvider(t *testing.T) {
	now := time.Now().UTC()

	p, err := ReconstructProvider(3, "Acme", "k", "", "", "active", false, 12.5, nil, APIConfig{}, now, now, &now)
	require.NoError(t, err)
	assert.Equal(t, uint(3), p.ID())
	assert.Equal(t, DefaultHTTPMethod, p.HTTPMethod())
	assert.True(t, p.IsTrashed())
	assert.Equal(t, DefaultOrdersParam, p.APIConfig().OrdersParam)
	assert.ErrorContains(t, p.SetID(4), "already set")

	_, err = ReconstructProvider(0, "Acme", "k", "", "POST", "active", false, 0, nil, APIConfig{}, now, now, nil)
	assert.Error(t, err)

	_, err = ReconstructProvider(1, "Acme", "k", "", "POST", "deleted", false, 0, nil, APIConfig{}, now, now, nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
