package procenv

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/google/shlex"
)

// Signal names an OS signal a handler can be registered for.
// The set is closed: values outside the declared constants are rejected by Process.Signal.
type Signal int

const (
	// SIGINT is the interrupt signal (Ctrl+C).
	SIGINT Signal = iota + 1
	// SIGTERM requests termination.
	SIGTERM
	// SIGHUP reports a hangup of the controlling terminal.
	SIGHUP
	// SIGUSR1 is user-defined signal 1.
	SIGUSR1
	// SIGUSR2 is user-defined signal 2.
	SIGUSR2
	// SIGINFO is the status request signal (Ctrl+T on Darwin and the BSDs).
	SIGINFO
)

var signalNames = map[Signal]string{
	SIGINT:  "SIGINT",
	SIGTERM: "SIGTERM",
	SIGHUP:  "SIGHUP",
	SIGUSR1: "SIGUSR1",
	SIGUSR2: "SIGUSR2",
	SIGINFO: "SIGINFO",
}

// Signals returns every defined signal in declaration order.
func Signals() []Signal {
	return []Signal{SIGINT, SIGTERM, SIGHUP, SIGUSR1, SIGUSR2, SIGINFO}
}

// Valid reports whether s is one of the declared signal constants.
func (s Signal) Valid() bool {
	_, ok := signalNames[s]

	return ok
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Signal(%d)", int(s))
}

// ParseSignal converts a signal name to a Signal.
// Matching is case-insensitive and the "SIG" prefix is optional ("SIGTERM", "term").
func ParseSignal(name string) (Signal, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(norm, "SIG") {
		norm = "SIG" + norm
	}

	for sig, n := range signalNames {
		if n == norm {
			return sig, nil
		}
	}

	return 0, fmt.Errorf("unknown signal %q: %w", name, ErrSignalNotInVocabulary)
}

// Vocabulary is the set of signals a Process accepts for registration.
// The zero value is empty and accepts nothing; use FullVocabulary for the default.
type Vocabulary struct {
	members []Signal
}

var (
	// FullVocabulary accepts every declared signal.
	FullVocabulary = NewVocabulary(Signals()...)

	// RestrictedVocabulary is the minimal two-signal set used by builds that only
	// care about termination and status requests.
	RestrictedVocabulary = NewVocabulary(SIGTERM, SIGINFO)
)

// NewVocabulary builds a vocabulary from the given signals.
// Invalid values and duplicates are dropped; members are kept in declaration order.
func NewVocabulary(sigs ...Signal) Vocabulary {
	var members []Signal

	for _, s := range Signals() {
		if slices.Contains(sigs, s) {
			members = append(members, s)
		}
	}

	return Vocabulary{members: members}
}

// ParseVocabulary accepts "full", "restricted", or a comma-separated list of signal names.
func ParseVocabulary(text string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "full":
		return FullVocabulary, nil
	case "restricted":
		return RestrictedVocabulary, nil
	}

	var sigs []Signal

	for part := range strings.SplitSeq(text, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		sig, err := ParseSignal(part)
		if err != nil {
			return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
		}

		sigs = append(sigs, sig)
	}

	if len(sigs) == 0 {
		return Vocabulary{}, errors.New("parse vocabulary: no signals listed")
	}

	return NewVocabulary(sigs...), nil
}

// Contains reports whether sig is a member of the vocabulary.
func (v Vocabulary) Contains(sig Signal) bool {
	return slices.Contains(v.members, sig)
}

// Signals returns a copy of the members in declaration order.
func (v Vocabulary) Signals() []Signal {
	return slices.Clone(v.members)
}

// Empty reports whether the vocabulary has no members.
func (v Vocabulary) Empty() bool {
	return len(v.members) == 0
}

func (v Vocabulary) String() string {
	switch {
	case slices.Equal(v.members, FullVocabulary.members):
		return "full"
	case slices.Equal(v.members, RestrictedVocabulary.members):
		return "restricted"
	}

	names := make([]string, 0, len(v.members))
	for _, s := range v.members {
		names = append(names, s.String())
	}

	return strings.Join(names, ",")
}

// Family identifies the host environment a Process is backed by.
type Family int

const (
	// FamilyUnknown is the zero value.
	FamilyUnknown Family = iota
	// FamilyLocal is a native Go process using the os and os/signal packages.
	FamilyLocal
	// FamilyNode is Go compiled to js/wasm running under Node.js.
	FamilyNode
	// FamilyDeno is Go compiled to js/wasm running under Deno.
	FamilyDeno
)

func (f Family) String() string {
	switch f {
	case FamilyLocal:
		return "local"
	case FamilyNode:
		return "node"
	case FamilyDeno:
		return "deno"
	case FamilyUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// TargetOS identifies the operating system the process runs on.
type TargetOS int

const (
	// OSUnknown represents an unidentified operating system.
	OSUnknown TargetOS = iota
	// OSLinux represents the Linux kernel.
	OSLinux
	// OSWindows represents Microsoft Windows.
	OSWindows
	// OSDarwin represents macOS (Darwin).
	OSDarwin
	// OSFreeBSD represents FreeBSD.
	OSFreeBSD
	// OSOpenBSD represents OpenBSD.
	OSOpenBSD
	// OSNetBSD represents NetBSD.
	OSNetBSD
)

func (os TargetOS) String() string {
	switch os {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	case OSOpenBSD:
		return "openbsd"
	case OSNetBSD:
		return "netbsd"
	case OSUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// BSDLike reports whether the OS descends from BSD and therefore knows SIGINFO.
func (os TargetOS) BSDLike() bool {
	switch os {
	case OSDarwin, OSFreeBSD, OSOpenBSD, OSNetBSD:
		return true
	case OSUnknown, OSLinux, OSWindows:
		return false
	default:
		return false
	}
}

// ParseTargetOS converts a typical OS string (e.g., "linux", "darwin") to a TargetOS.
func ParseTargetOS(osStr string) TargetOS {
	switch strings.ToLower(strings.TrimSpace(osStr)) {
	case "linux", "android":
		return OSLinux
	case "windows", "windows_nt", "win32":
		return OSWindows
	case "darwin", "macos", "ios":
		return OSDarwin
	case "freebsd":
		return OSFreeBSD
	case "openbsd":
		return OSOpenBSD
	case "netbsd":
		return OSNetBSD
	default:
		return OSUnknown
	}
}

// DetectLocalOS returns the TargetOS of the current running process.
func DetectLocalOS() TargetOS {
	return ParseTargetOS(runtime.GOOS)
}

// ParseCommandLine splits a shell-quoted command line into arguments using shlex.
// An empty line yields an empty, non-nil slice.
func ParseCommandLine(line string) ([]string, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line: %w", err)
	}

	if parts == nil {
		parts = []string{}
	}

	return parts, nil
}
