package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlogix/compliance"
)

func TestCompileDetector(t *testing.T) {
	det, err := CompileDetector(
		`has(data.audits) && data.audits.quarters_completed < 4 ` +
			`? string(data.audits.quarters_completed) + " of 4 quarterly audits completed" : ""`,
	)
	require.NoError(t, err)

	t.Run("fires when gap present", func(t *testing.T) {
		hint := det(Blob{"audits": map[string]any{"quarters_completed": int64(2)}})
		assert.Equal(t, "2 of 4 quarterly audits completed", hint)
	})

	t.Run("satisfied yields empty hint", func(t *testing.T) {
		hint := det(Blob{"audits": map[string]any{"quarters_completed": int64(4)}})
		assert.Empty(t, hint)
	})

	t.Run("missing data fails open", func(t *testing.T) {
		assert.Empty(t, det(Blob{}))
	})
}

func TestCompileDetector_InvalidExpression(t *testing.T) {
	_, err := CompileDetector(`data.audits <<>> nonsense`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, compliance.ErrInvalidExpression))
}

func TestCompileDetector_NonStringResultFailsOpen(t *testing.T) {
	det, err := CompileDetector(`data.size(`) // incomplete expression
	assert.Error(t, err)
	assert.Nil(t, det)

	det, err = CompileDetector(`42`)
	require.NoError(t, err)
	assert.Empty(t, det(Blob{}), "non-string results are treated as no gap")
}

func TestCompileDetector_EvalErrorFailsOpen(t *testing.T) {
	// Field access on a missing key errors at eval time; the rule must not
	// fire rather than surface the error.
	det, err := CompileDetector(`string(data.audits.quarters_completed)`)
	require.NoError(t, err)
	assert.Empty(t, det(Blob{}))
}
