package procenv

// guarded lists, per family, the signals whose registration may be refused by the host.
// A refusal for one of these is swallowed; for anything else it propagates.
// The local family resolves signals through per-platform tables, so every signal can be
// missing there (plan9 has no SIGTERM).
var guarded = map[Family][]Signal{
	FamilyLocal: Signals(),
	FamilyDeno:  {SIGHUP, SIGUSR1, SIGUSR2, SIGINFO},
	FamilyNode:  {SIGINFO},
}

// Guarded reports whether a registration of sig under family is wrapped in the
// unsupported-signal guard.
func Guarded(family Family, sig Signal) bool {
	for _, s := range guarded[family] {
		if s == sig {
			return true
		}
	}

	return false
}

// Supported reports whether handlers registered for sig under family on os can ever run.
//
// SIGINT and SIGTERM are available everywhere. SIGHUP and the user signals are not
// available on Windows, except that Node emits SIGHUP when the console window closes.
// SIGINFO exists only on Darwin and the BSDs.
func Supported(family Family, os TargetOS, sig Signal) bool {
	if family == FamilyUnknown || !sig.Valid() {
		return false
	}

	switch sig {
	case SIGINT, SIGTERM:
		return true
	case SIGHUP:
		if family == FamilyNode {
			return os != OSUnknown
		}

		return os != OSWindows && os != OSUnknown
	case SIGUSR1, SIGUSR2:
		return os != OSWindows && os != OSUnknown
	case SIGINFO:
		return os.BSDLike()
	default:
		return false
	}
}
