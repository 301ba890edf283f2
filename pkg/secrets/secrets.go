// Package secrets resolves a JSON secret document from a runtimevar URL.
//
// Supported schemes are awssecretsmanager://, file:// and constant://, for
// example "awssecretsmanager://prod/marketplace?region=us-east-1&decoder=string".
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"gocloud.dev/runtimevar"
	_ "gocloud.dev/runtimevar/awssecretsmanager"
	_ "gocloud.dev/runtimevar/constantvar"
	_ "gocloud.dev/runtimevar/filevar"
)

// Load opens the variable at url, reads its latest value once and returns the
// top-level string fields of the JSON object it holds. Non-string fields are
// formatted with %v.
func Load(ctx context.Context, url string) (map[string]string, error) {
	v, err := runtimevar.OpenVariable(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open secret variable: %w", err)
	}
	defer v.Close()

	snapshot, err := v.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("read secret: %w", err)
	}

	var doc map[string]any
	switch value := snapshot.Value.(type) {
	case map[string]any:
		doc = value
	case []byte:
		if err := json.Unmarshal(value, &doc); err != nil {
			return nil, fmt.Errorf("decode secret: %w", err)
		}
	case string:
		if err := json.Unmarshal([]byte(value), &doc); err != nil {
			return nil, fmt.Errorf("decode secret: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported secret value type %T", snapshot.Value)
	}

	values := make(map[string]string, len(doc))
	for key, raw := range doc {
		switch val := raw.(type) {
		case string:
			values[key] = val
		case nil:
		default:
			values[key] = fmt.Sprintf("%v", val)
		}
	}

	return values, nil
}
