package procenv

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sig  Signal
		want string
	}{
		{SIGINT, "SIGINT"},
		{SIGTERM, "SIGTERM"},
		{SIGHUP, "SIGHUP"},
		{SIGUSR1, "SIGUSR1"},
		{SIGUSR2, "SIGUSR2"},
		{SIGINFO, "SIGINFO"},
		{Signal(0), "Signal(0)"},
		{Signal(42), "Signal(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sig.String())
		})
	}
}

func TestSignals_DeclarationOrder(t *testing.T) {
	t.Parallel()

	sigs := Signals()
	require.Len(t, sigs, 6)

	for _, s := range sigs {
		assert.True(t, s.Valid(), s.String())
	}

	assert.False(t, Signal(0).Valid())
	assert.False(t, Signal(7).Valid())
}

func TestParseSignal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Signal
		wantErr bool
	}{
		{"SIGTERM", SIGTERM, false},
		{"term", SIGTERM, false},
		{" sigusr1 ", SIGUSR1, false},
		{"Info", SIGINFO, false},
		{"SIGKILL", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSignal(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrSignalNotInVocabulary)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Signals(), FullVocabulary.Signals())
	assert.Equal(t, []Signal{SIGTERM, SIGINFO}, RestrictedVocabulary.Signals())
	assert.Equal(t, "full", FullVocabulary.String())
	assert.Equal(t, "restricted", RestrictedVocabulary.String())

	assert.True(t, RestrictedVocabulary.Contains(SIGTERM))
	assert.False(t, RestrictedVocabulary.Contains(SIGINT))

	custom := NewVocabulary(SIGUSR2, SIGINT, SIGUSR2, Signal(99))
	assert.Equal(t, []Signal{SIGINT, SIGUSR2}, custom.Signals())
	assert.Equal(t, "SIGINT,SIGUSR2", custom.String())

	assert.True(t, NewVocabulary().Empty())
	assert.False(t, Vocabulary{}.Contains(SIGINT))
}

func TestVocabulary_SignalsIsCopy(t *testing.T) {
	t.Parallel()

	sigs := FullVocabulary.Signals()
	sigs[0] = SIGINFO

	assert.Equal(t, SIGINT, FullVocabulary.Signals()[0])
}

func TestParseVocabulary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Vocabulary
		wantErr bool
	}{
		{"", FullVocabulary, false},
		{"Full", FullVocabulary, false},
		{"restricted", RestrictedVocabulary, false},
		{"SIGTERM, info", RestrictedVocabulary, false},
		{"hup,usr1", NewVocabulary(SIGHUP, SIGUSR1), false},
		{"SIGKILL", Vocabulary{}, true},
		{",,", Vocabulary{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVocabulary(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Signals(), got.Signals())
		})
	}
}

func TestFamily_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "local", FamilyLocal.String())
	assert.Equal(t, "node", FamilyNode.String())
	assert.Equal(t, "deno", FamilyDeno.String())
	assert.Equal(t, "unknown", FamilyUnknown.String())
	assert.Equal(t, "unknown", Family(99).String())
}

func TestTargetOS_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		os   TargetOS
		want string
	}{
		{"linux", OSLinux, "linux"},
		{"windows", OSWindows, "windows"},
		{"darwin", OSDarwin, "darwin"},
		{"freebsd", OSFreeBSD, "freebsd"},
		{"openbsd", OSOpenBSD, "openbsd"},
		{"netbsd", OSNetBSD, "netbsd"},
		{"unknown", OSUnknown, "unknown"},
		{"invalid", TargetOS(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.os.String())
		})
	}
}

func TestParseTargetOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  TargetOS
	}{
		{"linux", OSLinux},
		{"Linux", OSLinux},
		{"windows", OSWindows},
		{"win32", OSWindows},
		{"Windows_NT", OSWindows},
		{"darwin", OSDarwin},
		{"macOS", OSDarwin},
		{"freebsd", OSFreeBSD},
		{"plan9", OSUnknown},
		{"", OSUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTargetOS(tt.input))
		})
	}
}

func TestDetectLocalOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ParseTargetOS(runtime.GOOS), DetectLocalOS())
}

func TestParseCommandLine(t *testing.T) {
	t.Parallel()

	got, err := ParseCommandLine(`serve --name "my app" 'a b' plain`)
	require.NoError(t, err)
	assert.Equal(t, []string{"serve", "--name", "my app", "a b", "plain"}, got)

	got, err = ParseCommandLine("")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = ParseCommandLine(`unterminated "quote`)
	require.Error(t, err)
}
