package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodecRoundTrip(t *testing.T) {
	codec := newCookieCodec([]byte("0123456789abcdef"))
	value := codec.encode("some-token")
	token, ok := codec.decode(value)
	require.True(t, ok)
	assert.Equal(t, "some-token", token)
}

func TestCookieCodecRejectsTampering(t *testing.T) {
	codec := newCookieCodec([]byte("0123456789abcdef"))
	value := codec.encode("some-token")

	_, ok := codec.decode("other-token" + value[len("some-token"):])
	assert.False(t, ok, "swapping the token must break the signature")

	_, ok = codec.decode("some-token")
	assert.False(t, ok, "a bare token without a signature must be rejected")

	_, ok = codec.decode("")
	assert.False(t, ok)

	other := newCookieCodec([]byte("fedcba9876543210"))
	_, ok = other.decode(value)
	assert.False(t, ok, "a cookie signed with a different secret must be rejected")
}

func TestSecretFromEnv(t *testing.T) {
	env := map[string]string{"TEST_SECRET": "0123456789abcdef"}
	getfn := func(k string) string { return env[k] }
	setfn := func(k, v string) error {
		env[k] = v
		return nil
	}
	secret, err := SecretFromEnv("TEST_SECRET", getfn, setfn)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), secret)
	assert.Empty(t, env["TEST_SECRET"], "the secret must be blanked after reading")

	_, err = SecretFromEnv("TEST_SECRET", getfn, setfn)
	assert.Error(t, err, "an empty secret must be refused")

	env["TEST_SECRET"] = "short"
	_, err = SecretFromEnv("TEST_SECRET", getfn, setfn)
	assert.Error(t, err, "a short secret must be refused")
}
