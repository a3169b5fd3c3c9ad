package output

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStyles(t *testing.T) {
	// A plain buffer has no color profile, so styling must degrade to
	// the unmodified text.
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	assert.Equal(t, "ok", styles.Success("ok"))
	assert.Equal(t, "boom", styles.Error("boom"))
	assert.Equal(t, "careful", styles.Warning("careful"))
	assert.Equal(t, "a/b.json", styles.FilePath("a/b.json"))
	assert.Equal(t, "format", styles.Keyword("format"))
	assert.Equal(t, "├─ ", styles.Dim("├─ "))
}
