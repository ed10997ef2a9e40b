package schema_test

import (
	"encoding/json"
	"testing"
)

func decodeTree(t *testing.T, data []byte) any {
	t.Helper()
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("decode tree: %v", err)
	}
	return tree
}
