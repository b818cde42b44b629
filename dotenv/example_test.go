package dotenv_test

import (
	"fmt"
	"strings"

	"github.com/initializ/loaddotenv/dotenv"
)

func ExampleParse() {
	pairs, err := dotenv.Parse(strings.NewReader("# settings\nKEY=value\nQUOTED=\"a b\"\nKEY=last\n"))
	if err != nil {
		panic(err)
	}
	for _, p := range pairs {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}
	// Output:
	// KEY=last
	// QUOTED=a b
}

func ExampleLoader() {
	env := dotenv.NewMapEnvironment(map[string]string{"HOME_SET": "1"})
	res, _ := (&dotenv.Loader{
		Filename: "does-not-exist.env",
		Policy:   dotenv.BestEffort,
		Env:      env,
	}).Load()
	fmt.Println(res.Missing, len(env.Keys()))
	// Output:
	// true 1
}
