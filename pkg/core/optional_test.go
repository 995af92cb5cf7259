package core_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/todos/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_DecodeDistinguishesOmittedFields(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		text      core.Optional[string]
		completed core.Optional[bool]
	}{
		{"Empty object", `{}`, core.None[string](), core.None[bool]()},
		{"Explicit nulls", `{"text":null,"completed":null}`, core.None[string](), core.None[bool]()},
		{"Text only", `{"text":"x"}`, core.Some("x"), core.None[bool]()},
		{"Empty text is a value", `{"text":""}`, core.Some(""), core.None[bool]()},
		{"False is a value", `{"completed":false}`, core.None[string](), core.Some(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p core.Patch
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.text, p.Text)
			assert.Equal(t, tt.completed, p.Completed)
		})
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var p core.Patch
	assert.Error(t, json.Unmarshal([]byte(`{"completed":"yes"}`), &p))
}

func TestOptional_Marshal(t *testing.T) {
	data, err := json.Marshal(core.Patch{Text: core.Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"x","completed":null}`, string(data))
}

func TestTodo_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(core.Todo{ID: 7, Text: "walk dog", Completed: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"text":"walk dog","completed":true}`, string(data))
}
