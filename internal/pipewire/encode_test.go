package pipewire

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ee2pwerrors "github.com/linuxmatters/ee2pw/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsDeterministic(t *testing.T) {
	var outputs [][]byte
	for i := 0; i < 5; i++ {
		doc, err := Build(loadFixture(t), Options{ChainName: "Think", SmartTarget: "speakers"})
		require.NoError(t, err)
		out, err := Encode(doc)
		require.NoError(t, err)
		outputs = append(outputs, out)
	}

	for i := 1; i < len(outputs); i++ {
		assert.True(t, bytes.Equal(outputs[0], outputs[i]), "run %d differs from run 0", i)
	}
}

func TestEncodeShape(t *testing.T) {
	doc, err := Build(loadFixture(t), Options{ChainName: "Think", SmartTarget: "speakers"})
	require.NoError(t, err)
	out, err := Encode(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(out, []byte("\n")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	modules := decoded["context.modules"].([]any)
	require.Len(t, modules, 1)
	module := modules[0].(map[string]any)
	assert.Equal(t, ModuleName, module["name"])

	args := module["args"].(map[string]any)
	assert.Equal(t, "Think", args["node.description"])
	assert.Equal(t, 2.0, args["audio.channels"])
	assert.Equal(t, []any{"FL", "FR"}, args["audio.position"])

	capture := args["capture.props"].(map[string]any)
	assert.Equal(t, true, capture["filter.smart"])
	assert.Equal(t, map[string]any{"node.name": "speakers"}, capture["filter.smart.target"])

	graph := args["filter.graph"].(map[string]any)
	nodes := graph["nodes"].([]any)
	require.Len(t, nodes, 5)
	first := nodes[0].(map[string]any)
	assert.Equal(t, "lv2", first["type"])
	assert.Equal(t, "filter_0", first["name"])
	assert.Contains(t, first, "plugin")
	assert.Contains(t, first, "control")

	links := graph["links"].([]any)
	assert.Equal(t, map[string]any{"output": "filter_0:out_l", "input": "bass_enhancer_0:in_l"}, links[0])
}

func TestEncodeOmitsSmartFieldsWithoutTarget(t *testing.T) {
	doc, err := Build(loadFixture(t), Options{ChainName: "Think"})
	require.NoError(t, err)
	out, err := Encode(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "filter.smart")
	assert.NotContains(t, string(out), "node.linger")
	assert.Contains(t, string(out), `"node.passive": true`)
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	doc, err := Build(loadFixture(t), Options{ChainName: "Bass & Voice <Live>"})
	require.NoError(t, err)
	out, err := Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Bass & Voice <Live>"`)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.conf")

	require.NoError(t, WriteFile(path, []byte("first\n")))
	require.NoError(t, WriteFile(path, []byte("second\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chain.conf")
	err := WriteFile(path, []byte("data"))
	assert.ErrorIs(t, err, ee2pwerrors.ErrWrite)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("-", []byte("doc\n"), &buf))
	require.NoError(t, Write("", []byte("doc\n"), &buf))
	assert.Equal(t, "doc\ndoc\n", buf.String())
}
