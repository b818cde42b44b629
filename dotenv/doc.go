// Package dotenv loads KEY=VALUE pairs from a .env file into the environment
// used by a build, so that later lookups succeed or fail deterministically.
//
// Three entry points cover the usual policies:
//
//	dotenv.Load()                       // .env, error if missing or malformed
//	dotenv.LoadFromFilename(".env.ci")  // only the named file, error names it
//	dotenv.TryLoad()                    // .env, errors discarded
//
// MustLoad and MustLoadFromFilename panic instead of returning the error.
// Parsing is done by github.com/joho/godotenv: one assignment per line,
// '#' comments and blank lines ignored, optional single or double quotes and
// an optional "export " prefix. Variables already present in the environment
// are kept unless Loader.Override is set.
package dotenv
