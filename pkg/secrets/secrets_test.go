package secrets

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantURL(val, decoder string) string {
	q := url.Values{}
	q.Set("val", val)
	q.Set("decoder", decoder)
	return "constant://?" + q.Encode()
}

func TestLoad_Decoders(t *testing.T) {
	doc := `{"JWT_KEY":"s3cret","MONGO_URL":"mongodb://db:27017","MAX_CONNS":20}`

	for _, decoder := range []string{"string", "bytes", "jsonmap"} {
		t.Run(decoder, func(t *testing.T) {
			values, err := Load(context.Background(), constantURL(doc, decoder))
			require.NoError(t, err)

			assert.Equal(t, "s3cret", values["JWT_KEY"])
			assert.Equal(t, "mongodb://db:27017", values["MONGO_URL"])
			assert.Equal(t, "20", values["MAX_CONNS"])
		})
	}
}

func TestLoad_NotJSON(t *testing.T) {
	_, err := Load(context.Background(), constantURL("plain-text", "string"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode secret")
}

func TestLoad_UnknownScheme(t *testing.T) {
	_, err := Load(context.Background(), "nosuchscheme://secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open secret variable")
}
