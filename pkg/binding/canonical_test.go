package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternotp/pkg/binding"
)

func TestCanonicalPayload(t *testing.T) {
	t.Parallel()

	t.Run("merges map metadata with sorted keys", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X7QX7Q", map[string]any{"b": 1, "a": 2})
		require.NoError(t, err)

		assert.Equal(t, `{"a":2,"b":1,"code":"X7QX7Q"}`, string(payload))
	})

	t.Run("key insertion order does not matter", func(t *testing.T) {
		t.Parallel()
		first := map[string]any{}
		first["b"] = 1
		first["a"] = 2
		second := map[string]any{}
		second["a"] = 2
		second["b"] = 1

		p1, err := binding.CanonicalPayload("X", first)
		require.NoError(t, err)
		p2, err := binding.CanonicalPayload("X", second)
		require.NoError(t, err)

		assert.Equal(t, p1, p2)
	})

	t.Run("nil metadata leaves only the code", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", nil)
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X"}`, string(payload))
	})

	t.Run("drops Absent entries but preserves nil", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", map[string]any{
			"gone": binding.Absent,
			"kept": nil,
		})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X","kept":null}`, string(payload))
	})

	t.Run("sorts nested maps recursively", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", map[string]any{
			"outer": map[string]any{"z": 1, "a": map[string]any{"y": true, "b": binding.Absent}},
		})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X","outer":{"a":{"y":true},"z":1}}`, string(payload))
	})

	t.Run("preserves sequence order", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", map[string]any{
			"seq": []any{3, "two", nil, true},
		})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X","seq":[3,"two",null,true]}`, string(payload))
	})

	t.Run("nests non-map metadata under meta", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", []string{"a", "b"})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X","meta":["a","b"]}`, string(payload))
	})

	t.Run("metadata cannot shadow the code field", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("REAL", map[string]any{"code": "FORGED"})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"REAL"}`, string(payload))
	})

	t.Run("falls back to deterministic text for odd types", func(t *testing.T) {
		t.Parallel()
		type point struct{ X, Y int }
		payload, err := binding.CanonicalPayload("X", map[string]any{"p": point{1, 2}})
		require.NoError(t, err)

		assert.Equal(t, `{"code":"X","p":"{1 2}"}`, string(payload))
	})

	t.Run("typed string maps canonicalize like plain maps", func(t *testing.T) {
		t.Parallel()
		payload, err := binding.CanonicalPayload("X", map[string]string{"b": "2", "a": "1"})
		require.NoError(t, err)

		assert.Equal(t, `{"a":"1","b":"2","code":"X"}`, string(payload))
	})
}
