package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"help/templates.md":       {Data: []byte("# Templates\n\nWrite {(name)} in files.")},
		"help/option-dry-run.txt": {Data: []byte("Dry run writes nothing.")},
		"help/more/config.md":     {Data: []byte("# Config")},
		"help/ignore.json":        {Data: []byte("{}")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS(), "help")
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config", "option-dry-run", "templates"}, tm.ListTopics())
		topic, ok := tm.GetTopic("templates")
		require.True(t, ok)
		assert.Equal(t, "help/templates.md", topic.FilePath)
		assert.Contains(t, topic.Content, "{(name)}")
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), "help", Options{Extensions: []string{".json"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"ignore"}, tm.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		tm := New(topicFS(), "nowhere")
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(topicFS(), "help")
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"templates", "templates", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# x", plain.Render("# x", ".md"))

	upper := RendererFunc(func(content, _ string) string { return strings.ToUpper(content) })
	assert.Equal(t, "ABC", upper.Render("abc", ".txt"))

	notty := ForOutput(false)
	assert.Equal(t, "just text", notty.Render("just text", ".txt"))
	rendered := notty.Render("# Heading\n\nbody", ".md")
	assert.Contains(t, rendered, "Heading")
	assert.Contains(t, rendered, "body")
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "codec", Short: "root"}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List templates", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestInitialize_HelpCommand(t *testing.T) {
	execute := func(t *testing.T, args ...string) string {
		t.Helper()
		root := newRoot()
		_, err := InitializeWithOptions(root, topicFS(), "help", Options{
			Renderer: RendererFunc(func(content, format string) string { return "[" + format + "]" + content }),
		})
		require.NoError(t, err)

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "[.md]# Templates\n\nWrite {(name)} in files.", execute(t, "help", "templates"))
	})

	t.Run("option topic", func(t *testing.T) {
		assert.Equal(t, "[.txt]Dry run writes nothing.", execute(t, "help", "--dry-run"))
	})

	t.Run("topic list", func(t *testing.T) {
		out := execute(t, "help", "topics")
		assert.Contains(t, out, "General topics:\n  config\n  templates\n")
		assert.Contains(t, out, "Option topics:\n  --dry-run\n")
		assert.Contains(t, out, "Use 'codec help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, execute(t, "help", "list"), "List templates")
	})
}
