package scheduler

import (
	"bytes"
	"io"
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// yamlOf renders templates as a single-category catalogue document.
func yamlOf(t *testing.T, templates []domain.ActionTemplate) io.Reader {
	t.Helper()
	doc := []map[string]any{{
		"category":  string(domain.CategoryLearning),
		"templates": templates,
	}}
	var buf bytes.Buffer
	require.NoError(t, yaml.NewEncoder(&buf).Encode(doc))
	return &buf
}
