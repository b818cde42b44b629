package dotenv

import (
	"fmt"
	"strings"

	"github.com/initializ/loaddotenv/internal/logging"
)

// DefaultFilename is the file read when no name is given.
const DefaultFilename = ".env"

// Policy decides what a failed load does to the build.
type Policy int

const (
	// Strict returns the error for a missing or malformed file.
	Strict Policy = iota
	// BestEffort discards the error and continues.
	BestEffort
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case BestEffort:
		return "best-effort"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts "strict" or "best-effort" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "best-effort", "besteffort", "try":
		return BestEffort, nil
	}
	return Strict, fmt.Errorf("unknown policy %q (want strict or best-effort)", s)
}

// Result describes a single load.
type Result struct {
	File    string
	Pairs   Pairs
	Applied []string // keys written to the environment
	Kept    []string // keys already set and left untouched
	Missing bool     // file did not exist
	Err     error    // discarded error under BestEffort
}

// Loader reads one file and applies it to an Environment.
type Loader struct {
	Filename string
	Policy   Policy
	Override bool
	Search   bool // look for a bare file name in parent directories too
	Env      Environment
	Logger   logging.Logger
}

// Load reads the file and sets every pair in the environment. Under
// BestEffort a failure is recorded in Result.Err and nil is returned. A file
// that fails to parse or holds an unsettable pair applies nothing.
func (l *Loader) Load() (*Result, error) {
	env := l.Env
	if env == nil {
		env = OSEnvironment{}
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	filename := cleanFilename(l.Filename)
	if filename == "" {
		filename = DefaultFilename
	}
	if l.Search {
		filename = Find(filename)
	}

	res := &Result{File: filename}
	fail := func(err error) (*Result, error) {
		if l.Policy == BestEffort {
			res.Err = err
			logger.Debug("skipping env file", map[string]any{"file": filename, "error": err.Error()})
			return res, nil
		}
		return res, err
	}

	pairs, err := Read(filename)
	if err != nil {
		res.Missing = IsNotExist(err)
		return fail(err)
	}
	if err := checkPairs(pairs); err != nil {
		return fail(&LoadError{File: filename, Err: err})
	}
	res.Pairs = pairs

	for _, p := range pairs {
		if !l.Override {
			if _, exists := env.LookupEnv(p.Key); exists {
				res.Kept = append(res.Kept, p.Key)
				continue
			}
		}
		if err := env.Setenv(p.Key, p.Value); err != nil {
			return fail(&LoadError{File: filename, Err: fmt.Errorf("setting %s: %w", p.Key, err)})
		}
		res.Applied = append(res.Applied, p.Key)
	}

	logger.Debug("loaded env file", map[string]any{
		"file":    filename,
		"applied": len(res.Applied),
		"kept":    len(res.Kept),
	})
	return res, nil
}

// Load reads DefaultFilename, found in the working directory or one of its
// parents, into the process environment.
func Load() error {
	_, err := (&Loader{Filename: DefaultFilename, Search: true}).Load()
	return err
}

// LoadFromFilename reads only the named file into the process environment.
// A bare name is looked up like Load does; an empty name is an error.
func LoadFromFilename(name string) error {
	if cleanFilename(name) == "" {
		return &LoadError{File: name, Err: ErrEmptyFilename}
	}
	_, err := (&Loader{Filename: name, Search: true}).Load()
	return err
}

// TryLoad reads DefaultFilename into the process environment, ignoring any
// error.
func TryLoad() {
	_, _ = (&Loader{Filename: DefaultFilename, Policy: BestEffort, Search: true}).Load()
}

// MustLoad is like Load but panics on failure.
func MustLoad() {
	if err := Load(); err != nil {
		panic(err.Error())
	}
}

// MustLoadFromFilename is like LoadFromFilename but panics on failure.
func MustLoadFromFilename(name string) {
	if err := LoadFromFilename(name); err != nil {
		panic(err.Error())
	}
}

// checkPairs rejects pairs the environment cannot hold, before any is set.
func checkPairs(pairs Pairs) error {
	for _, p := range pairs {
		if p.Key == "" || strings.ContainsAny(p.Key, "=\x00") {
			return fmt.Errorf("invalid variable name %q", p.Key)
		}
		if strings.ContainsRune(p.Value, 0) {
			return fmt.Errorf("value of %s contains a NUL byte", p.Key)
		}
	}
	return nil
}

// cleanFilename accepts names written as string literals, e.g. `".env.test"`.
func cleanFilename(name string) string {
	return strings.Trim(strings.TrimSpace(name), `"`)
}
