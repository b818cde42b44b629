package autoload

import (
	"os"
	"testing"

	"github.com/initializ/loaddotenv/dotenv"
)

func TestInitLoadsDotEnv(t *testing.T) {
	if got := os.Getenv("LOADDOTENV_AUTOLOAD_TEST"); got != "loaded on import" {
		t.Errorf("got %q, want %q", got, "loaded on import")
	}
}

func TestTryLoadRepeated(t *testing.T) {
	// The fixture is already applied; reloading keeps the same value.
	dotenv.TryLoad()
	dotenv.TryLoad()
	if got := os.Getenv("LOADDOTENV_AUTOLOAD_TEST"); got != "loaded on import" {
		t.Errorf("got %q after reload", got)
	}
}
