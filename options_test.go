package procenv

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	assert.Equal(t, FullVocabulary.Signals(), cfg.Vocabulary.Signals())
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.Args)
	assert.False(t, cfg.HasOverrides())
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	logger := log.New(&out)

	cfg := NewConfig(
		WithVocabulary(RestrictedVocabulary),
		WithLogger(logger),
		WithArgs("a", "b"),
		WithStdout(&out),
		WithStderr(&errOut),
		WithExitFunc(func(int) {}),
		WithTargetOS(OSDarwin),
	)

	assert.Equal(t, RestrictedVocabulary.Signals(), cfg.Vocabulary.Signals())
	assert.Same(t, logger, cfg.Logger)
	assert.Equal(t, []string{"a", "b"}, cfg.Args)
	assert.Same(t, &out, cfg.Stdout)
	assert.Same(t, &errOut, cfg.Stderr)
	assert.NotNil(t, cfg.ExitFunc)
	assert.Equal(t, OSDarwin, cfg.TargetOS)
	assert.True(t, cfg.HasOverrides())
}

func TestWithArgs_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []string{"x"}
	cfg := NewConfig(WithArgs(in...))
	in[0] = "changed"

	assert.Equal(t, []string{"x"}, cfg.Args)

	empty := NewConfig(WithArgs())
	assert.NotNil(t, empty.Args)
	assert.True(t, empty.HasOverrides())
}

func TestWithArgLine(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(WithArgLine(`-n "two words"`))
	assert.Equal(t, []string{"-n", "two words"}, cfg.Args)

	broken := NewConfig(WithArgLine(`"open`))
	assert.Equal(t, []string{`"open`}, broken.Args)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	require.Error(t, nilCfg.Validate())

	cfg := NewConfig(WithVocabulary(NewVocabulary()))
	require.Error(t, cfg.Validate())
}

func TestRejectOverrides(t *testing.T) {
	t.Parallel()

	require.NoError(t, RejectOverrides(FamilyNode, NewConfig(WithVocabulary(RestrictedVocabulary))))

	err := RejectOverrides(FamilyDeno, NewConfig(WithArgs()))
	require.ErrorIs(t, err, ErrNotSupported)
	assert.Contains(t, err.Error(), "deno")
}
