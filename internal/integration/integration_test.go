package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rendered, err := Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "#!/"), "expected shebang, got %q", rendered)
	assert.Contains(t, rendered, "drop_caches")
	assert.Contains(t, rendered, "read-tree")
	assert.NotContains(t, rendered, "{{")
}
