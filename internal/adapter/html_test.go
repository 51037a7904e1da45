package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBodyText(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "plain body",
			page: "<html><head><title>Game</title></head><body>\n  Welcome, adventurer.\n</body></html>",
			want: "Welcome, adventurer.",
		},
		{
			name: "nested markup and entities",
			page: "<body><h1>Level&nbsp;1</h1><p>A door &amp; a key.</p></body>",
			want: "Level 1A door & a key.",
		},
		{
			name: "script and style skipped",
			page: "<body><style>p{}</style><p>Look around.</p><script>var x = 1;</script></body>",
			want: "Look around.",
		},
		{
			name: "head text ignored",
			page: "<html><head><title>Title</title></head><body>Body</body></html>",
			want: "Body",
		},
		{
			name: "multiline narration kept",
			page: "<body><pre>#### YOU ARE NOW PLAYING LEVEL 1 ####\n$ help\n</pre></body>",
			want: "#### YOU ARE NOW PLAYING LEVEL 1 ####\n$ help",
		},
		{
			name: "empty body",
			page: "<body>   </body>",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractBodyText(strings.NewReader(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBodyText_NoBody(t *testing.T) {
	_, err := extractBodyText(strings.NewReader("<html><head></head></html>"))
	assert.ErrorIs(t, err, ErrNoBody)
}
