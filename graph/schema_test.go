package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/VitaminP8/postql/internal/storage/memory"
)

func TestSDL(t *testing.T) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: SDL()})
	require.Nil(t, err)

	t.Run("Post type", func(t *testing.T) {
		postType := schema.Types["Post"]
		require.NotNil(t, postType)
		assert.Equal(t, ast.Object, postType.Kind)
		assert.Equal(t, "Int!", postType.Fields.ForName("id").Type.String())
		assert.Equal(t, "String!", postType.Fields.ForName("post").Type.String())
		assert.Equal(t, "String!", postType.Fields.ForName("content").Type.String())
	})

	t.Run("PostInput type", func(t *testing.T) {
		inputType := schema.Types["PostInput"]
		require.NotNil(t, inputType)
		assert.Equal(t, ast.InputObject, inputType.Kind)
		assert.Len(t, inputType.Fields, 2)
	})

	t.Run("Root operations", func(t *testing.T) {
		require.NotNil(t, schema.Query)
		require.NotNil(t, schema.Mutation)
		assert.Nil(t, schema.Subscription)

		for _, name := range []string{"getPosts", "getPost"} {
			assert.NotNil(t, schema.Query.Fields.ForName(name), name)
		}
		for _, name := range []string{"create_post", "update_post", "delete_post"} {
			assert.NotNil(t, schema.Mutation.Fields.ForName(name), name)
		}
	})

	t.Run("Malformed input is rejected by the schema", func(t *testing.T) {
		_, errs := gqlparser.LoadQuery(schema, `mutation { create_post(input: {post: 123, content: null}) { id } }`)
		assert.NotEmpty(t, errs)

		_, errs = gqlparser.LoadQuery(schema, `mutation { create_post(input: {post: "a", content: "b"}) { id post content } }`)
		assert.Empty(t, errs)
	})
}

type execResult struct {
	data   map[string]json.RawMessage
	errors []string
	codes  []interface{}
}

func exec(t *testing.T, r *Resolver, query string, vars map[string]interface{}) execResult {
	t.Helper()
	schema, err := NewSchema(r)
	require.NoError(t, err)

	resp := schema.Exec(context.Background(), query, "", vars)

	var res execResult
	if len(resp.Data) > 0 && string(resp.Data) != "null" {
		require.NoError(t, json.Unmarshal(resp.Data, &res.data))
	}
	for _, e := range resp.Errors {
		res.errors = append(res.errors, e.Message)
		res.codes = append(res.codes, e.Extensions["code"])
	}
	return res
}

func TestSchema_Exec(t *testing.T) {
	store := memory.NewPostMemoryStorage()
	resolver := NewResolver(store, nil)

	t.Run("Create and read back", func(t *testing.T) {
		res := exec(t, resolver, `mutation($in: PostInput!) { create_post(input: $in) { id post content } }`,
			map[string]interface{}{"in": map[string]interface{}{"post": "a", "content": "b"}})
		require.Empty(t, res.errors)
		assert.JSONEq(t, `{"id":1,"post":"a","content":"b"}`, string(res.data["create_post"]))

		res = exec(t, resolver, `query($id: Int!) { getPost(id: $id) { id post content } }`,
			map[string]interface{}{"id": float64(1)})
		require.Empty(t, res.errors)
		assert.JSONEq(t, `{"id":1,"post":"a","content":"b"}`, string(res.data["getPost"]))
	})

	t.Run("Malformed input never reaches storage", func(t *testing.T) {
		res := exec(t, resolver, `mutation { create_post(input: {post: 123, content: null}) { id } }`, nil)
		assert.NotEmpty(t, res.errors)

		res = exec(t, resolver, `mutation($in: PostInput!) { create_post(input: $in) { id } }`,
			map[string]interface{}{"in": map[string]interface{}{"post": "a"}})
		assert.NotEmpty(t, res.errors)

		res = exec(t, resolver, `{ getPosts { id } }`, nil)
		require.Empty(t, res.errors)
		assert.JSONEq(t, `[{"id":1}]`, string(res.data["getPosts"]))
	})

	t.Run("Not found is reported with a code", func(t *testing.T) {
		res := exec(t, resolver, `{ getPost(id: 999) { id } }`, nil)
		require.Len(t, res.errors, 1)
		assert.Equal(t, "Post with id of 999 not found", res.errors[0])
		assert.Equal(t, CodeNotFound, res.codes[0])
	})

	t.Run("Delete returns the snapshot", func(t *testing.T) {
		res := exec(t, resolver, `mutation { delete_post(id: 1) { id post content } }`, nil)
		require.Empty(t, res.errors)
		assert.JSONEq(t, `{"id":1,"post":"a","content":"b"}`, string(res.data["delete_post"]))

		res = exec(t, resolver, `mutation { delete_post(id: 1) { id } }`, nil)
		require.Len(t, res.errors, 1)
		assert.Equal(t, "Post with id of 1 not found", res.errors[0])
	})
}
