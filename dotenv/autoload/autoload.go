// Package autoload loads .env on import, ignoring a missing or malformed
// file.
//
//	import _ "github.com/initializ/loaddotenv/dotenv/autoload"
package autoload

import "github.com/initializ/loaddotenv/dotenv"

func init() {
	dotenv.TryLoad()
}
